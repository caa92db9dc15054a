package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/pkg/response"
	"github.com/oksasatya/library-management-api/pkg/validation"
)

type BookHandler struct {
	Svc    *application.BookService
	Logger *logrus.Logger
}

func NewBookHandler(svc *application.BookService, logger *logrus.Logger) *BookHandler {
	return &BookHandler{Svc: svc, Logger: logger}
}

type createBookRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required,max=255"`
	Authors     string  `json:"authors" binding:"required,max=255"`
	ISBN        string  `json:"isbn" binding:"required,max=255"`
	CategoryIDs []int64 `json:"categoryIds"`
}

type updateBookRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	Authors     *string `json:"authors" binding:"omitempty,max=255"`
	ISBN        *string `json:"isbn" binding:"omitempty,max=255"`
	CategoryIDs []int64 `json:"categoryIds"`
}

// Create POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	// required would reject an empty slice, but an empty categoryIds is a
	// legal uncategorized book. Only a missing key is invalid.
	if req.CategoryIDs == nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", map[string]string{"categoryIds": "categoryIds is required"})
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), application.CreateBookInput{
		Title:       req.Title,
		Description: req.Description,
		Authors:     req.Authors,
		ISBN:        req.ISBN,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusCreated, toBookResponse(b), "book created")
}

// List GET /api/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.Svc.List(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toBookResponses(books), "books")
}

// Get GET /api/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	b, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toBookResponse(b), "book")
}

// Update PATCH /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	b, err := h.Svc.Update(c.Request.Context(), id, application.UpdateBookInput{
		Title:       req.Title,
		Description: req.Description,
		Authors:     req.Authors,
		ISBN:        req.ISBN,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toBookResponse(b), "book updated")
}

// Delete DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	b, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toBookResponse(b), "book deleted")
}
