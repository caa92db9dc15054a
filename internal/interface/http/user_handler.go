package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/pkg/response"
	"github.com/oksasatya/library-management-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name     string      `json:"name" binding:"required,max=255"`
	Email    string      `json:"email" binding:"required,email,max=255"`
	Password string      `json:"password" binding:"required,pwd,max=255"`
	Phone    string      `json:"phone" binding:"required,max=255"`
	Address  string      `json:"address" binding:"required,max=255"`
	Role     entity.Role `json:"role" binding:"omitempty,oneof=ADMIN LIBRARIAN MEMBER"`
}

type updateUserRequest struct {
	Name     *string      `json:"name" binding:"omitempty,max=255"`
	Email    *string      `json:"email" binding:"omitempty,email,max=255"`
	Password *string      `json:"password" binding:"omitempty,pwd,max=255"`
	Phone    *string      `json:"phone" binding:"omitempty,max=255"`
	Address  *string      `json:"address" binding:"omitempty,max=255"`
	Role     *entity.Role `json:"role" binding:"omitempty,oneof=ADMIN LIBRARIAN MEMBER"`
}

// Create POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
	})
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusCreated, toUserResponse(u), "user created")
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toUserResponses(users), "users")
}

// Get GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toUserResponse(u), "user")
}

// Update PATCH /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), id, application.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
	})
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toUserResponse(u), "user updated")
}

// Delete DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toUserResponse(u), "user deleted")
}
