package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/pkg/response"
	"github.com/oksasatya/library-management-api/pkg/validation"
)

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type updateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

// Create POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	cat, err := h.Svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusCreated, toCategoryResponse(cat), "category created")
}

// List GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Svc.List(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toCategoryResponses(cats), "categories")
}

// Get GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cat, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toCategoryResponse(cat), "category")
}

// Update PATCH /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	cat, err := h.Svc.Update(c.Request.Context(), id, application.UpdateCategoryInput{Name: req.Name})
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toCategoryResponse(cat), "category updated")
}

// Delete DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cat, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toCategoryResponse(cat), "category deleted")
}
