package controller

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/sayed725/express-server/internal/models"
	"github.com/sayed725/express-server/internal/response"
)

// TodoService is the operation set the todos controller needs.
type TodoService interface {
	Create(ctx context.Context, userID *int64, title *string) (*models.Todo, error)
	List(ctx context.Context) ([]models.Todo, error)
	GetByID(ctx context.Context, id int64) (*models.Todo, error)
	Update(ctx context.Context, id int64, title *string) (*models.Todo, error)
	Delete(ctx context.Context, id int64) ([]models.Todo, error)
}

// Todos translates HTTP requests into TodoService calls.
type Todos struct {
	svc TodoService
}

func NewTodos(svc TodoService) *Todos {
	return &Todos{svc: svc}
}

func (h *Todos) Create(c *gin.Context) {
	// Pointer fields so omitted values reach the store as NULL; a missing
	// title is rejected by the NOT NULL constraint, not here.
	var body struct {
		UserID *int64  `json:"user_id"`
		Title  *string `json:"title"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request")
		return
	}
	todo, err := h.svc.Create(c.Request.Context(), body.UserID, body.Title)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Created(c, "Todos created successfully", todo)
}

func (h *Todos) List(c *gin.Context) {
	todos, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	response.OK(c, "Todos fetched successfully", todos)
}

func (h *Todos) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	todo, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if todo == nil {
		response.NotFound(c, "Todos not found")
		return
	}
	response.OK(c, "Todos fetched successfully", todo)
}

func (h *Todos) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Title *string `json:"title"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request")
		return
	}
	todo, err := h.svc.Update(c.Request.Context(), id, body.Title)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if todo == nil {
		response.NotFound(c, "Todos not found")
		return
	}
	response.OK(c, "Todos updated successfully", todo)
}

func (h *Todos) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if len(deleted) == 0 {
		response.NotFound(c, "Todos not found")
		return
	}
	response.OK(c, "Todos deleted successfully", deleted)
}
