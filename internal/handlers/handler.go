package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/cache"
	"taskboard/internal/models"
	"taskboard/internal/realtime"
	"taskboard/internal/store"

	"github.com/gin-gonic/gin"
)

// userChoicesTTL bounds staleness of the assignee dropdown between explicit
// invalidations.
const userChoicesTTL = 30 * time.Second

const userChoicesKey = "by_name"

// Handler carries the dependencies shared by all page handlers. The store is
// passed in explicitly; there is no package-level state.
type Handler struct {
	store *store.Store
	hub   *realtime.Hub
	users *cache.TTLCache[string, []models.User]
}

// New creates a Handler around a store and a broadcast hub.
func New(s *store.Store, hub *realtime.Hub) *Handler {
	return &Handler{
		store: s,
		hub:   hub,
		users: cache.NewTTLCache[string, []models.User](),
	}
}

// userChoices returns the username-ordered user list for dropdowns, memoized
// for a short TTL. User create/delete clears the cache.
func (h *Handler) userChoices() ([]models.User, error) {
	if users, ok := h.users.Get(userChoicesKey); ok {
		return users, nil
	}
	users, err := h.store.ListUsersByName()
	if err != nil {
		return nil, err
	}
	h.users.Set(userChoicesKey, users, userChoicesTTL)
	return users, nil
}

// broadcast notifies connected listing pages that the board changed.
func (h *Handler) broadcast(event string, id uint) {
	evt := map[string]any{
		"type": event,
		"id":   id,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		h.hub.Broadcast(bytes)
	}
}

// storeError surfaces a store failure as a plain 500 with the raw message.
func storeError(c *gin.Context, err error) {
	c.String(http.StatusInternalServerError, err.Error())
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
