package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/models"
	"taskboard/internal/store"
	"taskboard/internal/web"

	"github.com/gin-gonic/gin"
)

// TaskForm is the form payload shared by task creation and edit. All three
// fields are required; a binding failure is treated as a validation no-op.
type TaskForm struct {
	Title    string `form:"title" binding:"required"`
	UserID   uint   `form:"user_id" binding:"required"`
	Priority string `form:"priority" binding:"required"`
}

/*
*
ListTasks handles GET /
Renders the task listing. Query params user_id, status and priority each
either filter the listing or carry the wildcard "all".
*/
func (h *Handler) ListTasks(c *gin.Context) {
	filter := store.TaskFilter{
		UserID:   c.DefaultQuery("user_id", store.FilterAll),
		Status:   c.DefaultQuery("status", store.FilterAll),
		Priority: c.DefaultQuery("priority", store.FilterAll),
	}

	tasks, err := h.store.ListTasks(filter)
	if err != nil {
		storeError(c, err)
		return
	}

	users, err := h.userChoices()
	if err != nil {
		storeError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", web.NewListingView(tasks, users, filter))
}

/*
*
CreateTask handles POST /
Creates an Open task from the form fields and refreshes the listing. Missing
fields redirect back without creating anything.
*/
func (h *Handler) CreateTask(c *gin.Context) {
	var form TaskForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	err := h.store.CreateTask(form.Title, form.UserID, models.TaskPriority(form.Priority))
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		storeError(c, err)
		return
	}

	h.broadcast("task_created", 0)
	c.Redirect(http.StatusSeeOther, "/")
}

// CompleteTask handles GET /complete/:id
// Marks a task Complete; a missing id is a silent no-op.
func (h *Handler) CompleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.store.CompleteTask(id); err != nil {
		storeError(c, err)
		return
	}

	h.broadcast("task_completed", id)
	c.Redirect(http.StatusFound, "/")
}

// DeleteTask handles GET /delete/:id
// Deletes a task; a missing id is a silent no-op.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.store.DeleteTask(id); err != nil {
		storeError(c, err)
		return
	}

	h.broadcast("task_deleted", id)
	c.Redirect(http.StatusFound, "/")
}

// EditTaskForm handles GET /edit/:id
// Renders the edit form for one task; an unknown id redirects to the listing.
func (h *Handler) EditTaskForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	task, err := h.store.GetTask(id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		storeError(c, err)
		return
	}

	users, err := h.userChoices()
	if err != nil {
		storeError(c, err)
		return
	}

	c.HTML(http.StatusOK, "edit.html", web.NewEditView(task, users))
}

// UpdateTask handles POST /edit/:id
// Overwrites title, assignee and priority; status and creation time are left
// alone. A validation failure redirects back to the edit form.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var form TaskForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/edit/"+c.Param("id"))
		return
	}

	err := h.store.UpdateTask(id, form.Title, form.UserID, models.TaskPriority(form.Priority))
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.Redirect(http.StatusSeeOther, "/edit/"+c.Param("id"))
			return
		}
		storeError(c, err)
		return
	}

	h.broadcast("task_updated", id)
	c.Redirect(http.StatusSeeOther, "/")
}
