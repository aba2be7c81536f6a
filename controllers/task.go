package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapi/middleware"
	"todoapi/models"
	"todoapi/store"
)

// TaskController exposes the task store over HTTP. Every operation is
// scoped to the authenticated user; the owner is injected on create and
// never read from the request body.
type TaskController struct {
	Store *store.TaskStore
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var in store.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := tc.Store.Create(userID, in)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (tc *TaskController) ListTasks(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var filter store.TaskFilter
	if v, exists := c.GetQuery("completed"); exists {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid completed filter"})
			return
		}
		filter.Completed = &b
	}
	if v, exists := c.GetQuery("priority"); exists {
		p, err := models.ParsePriority(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority filter"})
			return
		}
		filter.Priority = &p
	}

	tasks, err := tc.Store.List(userID, filter)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	task, err := tc.Store.Get(userID, taskID(c))
	if err != nil {
		renderStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) ReplaceTask(c *gin.Context) {
	tc.updateTask(c, false)
}

func (tc *TaskController) PatchTask(c *gin.Context) {
	tc.updateTask(c, true)
}

func (tc *TaskController) updateTask(c *gin.Context, partial bool) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var in store.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := tc.Store.Update(userID, taskID(c), in, partial)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) DeleteTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := tc.Store.Delete(userID, taskID(c)); err != nil {
		renderStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func requireUser(c *gin.Context) (uint, bool) {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return 0, false
	}
	return userID, true
}

// taskID parses the :id path parameter. A non-numeric id can never match
// a record, so it falls through to the store's not-found result.
func taskID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func renderStoreError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task", "fields": verr.Fields})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
