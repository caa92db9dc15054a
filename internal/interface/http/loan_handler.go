package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/pkg/response"
	"github.com/oksasatya/library-management-api/pkg/validation"
)

type LoanHandler struct {
	Svc    *application.LoanService
	Logger *logrus.Logger
}

func NewLoanHandler(svc *application.LoanService, logger *logrus.Logger) *LoanHandler {
	return &LoanHandler{Svc: svc, Logger: logger}
}

type createLoanRequest struct {
	BookID      int64   `json:"bookId" binding:"required"`
	LibrarianID int64   `json:"librarianId" binding:"required"`
	MemberID    int64   `json:"memberId" binding:"required"`
	LoanAt      string  `json:"loanAt" binding:"required"`
	ReturnedAt  *string `json:"returnedAt"`
	Note        *string `json:"note" binding:"omitempty,max=255"`
}

type updateLoanRequest struct {
	BookID      *int64                   `json:"bookId"`
	LibrarianID *int64                   `json:"librarianId"`
	MemberID    *int64                   `json:"memberId"`
	LoanAt      *string                  `json:"loanAt"`
	ReturnedAt  application.NullableTime `json:"returnedAt"`
	Note        *string                  `json:"note" binding:"omitempty,max=255"`
}

// Create POST /api/loans
func (h *LoanHandler) Create(c *gin.Context) {
	var req createLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	loanAt, err := application.ParseDate(req.LoanAt)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", map[string]string{"loanAt": "loanAt must be a date"})
		return
	}
	var returnedAt *time.Time
	if req.ReturnedAt != nil {
		t, err := application.ParseDate(*req.ReturnedAt)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "invalid payload", map[string]string{"returnedAt": "returnedAt must be a date"})
			return
		}
		returnedAt = &t
	}

	l, err := h.Svc.Create(c.Request.Context(), application.CreateLoanInput{
		BookID:      req.BookID,
		LibrarianID: req.LibrarianID,
		MemberID:    req.MemberID,
		LoanAt:      loanAt,
		ReturnedAt:  returnedAt,
		Note:        req.Note,
	})
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusCreated, toLoanResponse(l), "loan created")
}

// List GET /api/loans
func (h *LoanHandler) List(c *gin.Context) {
	loans, err := h.Svc.List(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toLoanResponses(loans), "loans")
}

// Get GET /api/loans/:id
func (h *LoanHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	l, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toLoanResponse(l), "loan")
}

// Update PATCH /api/loans/:id
func (h *LoanHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.UpdateLoanInput{
		BookID:      req.BookID,
		LibrarianID: req.LibrarianID,
		MemberID:    req.MemberID,
		ReturnedAt:  req.ReturnedAt,
		Note:        req.Note,
	}
	if req.LoanAt != nil {
		t, err := application.ParseDate(*req.LoanAt)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "invalid payload", map[string]string{"loanAt": "loanAt must be a date"})
			return
		}
		in.LoanAt = &t
	}

	l, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toLoanResponse(l), "loan updated")
}

// Delete DELETE /api/loans/:id
func (h *LoanHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	l, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		failure(c, err)
		return
	}
	response.OK(c, http.StatusOK, toLoanResponse(l), "loan deleted")
}
