package controller

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sayed725/express-server/internal/models"
	"github.com/sayed725/express-server/internal/response"
)

// UserService is the operation set the users controller needs. The repository
// satisfies it; tests substitute a stub.
type UserService interface {
	Create(ctx context.Context, name, email *string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, name, email *string) (*models.User, error)
	Delete(ctx context.Context, id int64) ([]models.User, error)
}

// Users translates HTTP requests into UserService calls and renders the
// result as an envelope. It is the only place user failures become statuses.
type Users struct {
	svc UserService
}

func NewUsers(svc UserService) *Users {
	return &Users{svc: svc}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Users) Create(c *gin.Context) {
	// Pointer fields so an omitted field reaches the store as NULL and the
	// NOT NULL constraint rejects it there; no validation happens here.
	var body struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request")
		return
	}
	user, err := h.svc.Create(c.Request.Context(), body.Name, body.Email)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Created(c, "Data inserted successfully", user)
}

func (h *Users) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	response.OK(c, "Users fetched successfully", users)
}

func (h *Users) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, "User fetched successfully", user)
}

func (h *Users) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request")
		return
	}
	user, err := h.svc.Update(c.Request.Context(), id, body.Name, body.Email)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, "User updated successfully", user)
}

func (h *Users) Delete(c *gin.Context) {
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
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, "User deleted successfully", deleted)
}
