package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aditrahmn/contact-management-api/internal/application"
	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
	"github.com/aditrahmn/contact-management-api/internal/interface/middleware"
	"github.com/aditrahmn/contact-management-api/pkg/response"
	"github.com/aditrahmn/contact-management-api/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
}

type contactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func toContactResponse(c *entity.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// contactIDParam parses the :contactId path segment; a non-numeric id is a
// 400, not a 404.
func contactIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil {
		response.Errors(c, http.StatusBadRequest, map[string]string{"contactId": "must be numeric"})
		return 0, false
	}
	return id, true
}

func (h *ContactHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, application.ErrContactNotFound) {
		response.Errors(c, http.StatusNotFound, err.Error())
		return
	}
	h.Logger.WithError(err).Error("contact operation failed")
	response.Errors(c, http.StatusInternalServerError, "internal server error")
}

// Create POST /api/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	contact, err := h.Svc.Create(c.Request.Context(), user, application.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, toContactResponse(contact))
}

// Get GET /api/contacts/:contactId
func (h *ContactHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := contactIDParam(c)
	if !ok {
		return
	}

	contact, err := h.Svc.Get(c.Request.Context(), user, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Data(c, http.StatusOK, toContactResponse(contact))
}

// Update PUT /api/contacts/:contactId
func (h *ContactHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := contactIDParam(c)
	if !ok {
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	contact, err := h.Svc.Update(c.Request.Context(), user, id, application.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Data(c, http.StatusOK, toContactResponse(contact))
}

// Remove DELETE /api/contacts/:contactId
func (h *ContactHandler) Remove(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := contactIDParam(c)
	if !ok {
		return
	}

	if _, err := h.Svc.Remove(c.Request.Context(), user, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Data(c, http.StatusOK, true)
}

// Search GET /api/contacts
func (h *ContactHandler) Search(c *gin.Context) {
	user := middleware.CurrentUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	contacts, paging, err := h.Svc.Search(c.Request.Context(), user, application.SearchContactInput{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		Page:  page,
		Size:  size,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, toContactResponse(contact))
	}

	response.DataWithPaging(c, http.StatusOK, out, paging)
}

// QuickSearch GET /api/search/contacts
func (h *ContactHandler) QuickSearch(c *gin.Context) {
	user := middleware.CurrentUser(c)

	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.QuickSearch(c.Request.Context(), user.Username, c.Query("q"), size)
	if err != nil {
		h.Logger.WithError(err).Error("quick search failed")
		response.Errors(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Data(c, http.StatusOK, hits)
}
