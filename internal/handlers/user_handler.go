package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/store"
	"taskboard/internal/web"

	"github.com/gin-gonic/gin"
)

// UserForm is the form payload for user creation.
type UserForm struct {
	Username string `form:"username" binding:"required"`
}

// UsersPage handles GET /users
// Renders the management view: users ordered by id, plus the creation form.
// The error query param carries the outcome of a rejected delete.
func (h *Handler) UsersPage(c *gin.Context) {
	users, err := h.store.ListUsersByID()
	if err != nil {
		storeError(c, err)
		return
	}

	msg := ""
	if c.Query("error") == "in_use" {
		msg = "User still has assigned tasks and cannot be deleted."
	}

	c.HTML(http.StatusOK, "users.html", web.UsersView{Users: users, Error: msg})
}

// CreateUser handles POST /users
// Inserts a user; an already-taken username succeeds silently without a
// duplicate. A missing username redirects back without creating anything.
func (h *Handler) CreateUser(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/users")
		return
	}

	if err := h.store.CreateUser(form.Username); err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.Redirect(http.StatusSeeOther, "/users")
			return
		}
		storeError(c, err)
		return
	}

	h.users.Clear()
	c.Redirect(http.StatusSeeOther, "/users")
}

// DeleteUser handles GET /delete-user/:id
// Removes a user. A user that still has tasks assigned is rejected and the
// management view shows why.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/users")
		return
	}

	if err := h.store.DeleteUser(id); err != nil {
		if errors.Is(err, store.ErrUserHasTasks) {
			c.Redirect(http.StatusFound, "/users?error=in_use")
			return
		}
		storeError(c, err)
		return
	}

	h.users.Clear()
	c.Redirect(http.StatusFound, "/users")
}
