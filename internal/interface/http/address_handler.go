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

type AddressHandler struct {
	Svc    *application.AddressService
	Logger *logrus.Logger
}

func NewAddressHandler(svc *application.AddressService, logger *logrus.Logger) *AddressHandler {
	return &AddressHandler{Svc: svc, Logger: logger}
}

type addressRequest struct {
	Street     string `json:"street" binding:"omitempty,max=255"`
	City       string `json:"city" binding:"omitempty,max=100"`
	Province   string `json:"province" binding:"omitempty,max=100"`
	Country    string `json:"country" binding:"required,min=1,max=100"`
	PostalCode string `json:"postal_code" binding:"required,min=1,max=10"`
}

type addressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

func toAddressResponse(a *entity.Address) addressResponse {
	return addressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func addressIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("addressId"), 10, 64)
	if err != nil {
		response.Errors(c, http.StatusBadRequest, map[string]string{"addressId": "must be numeric"})
		return 0, false
	}
	return id, true
}

func (h *AddressHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrContactNotFound),
		errors.Is(err, application.ErrAddressNotFound):
		response.Errors(c, http.StatusNotFound, err.Error())
	default:
		h.Logger.WithError(err).Error("address operation failed")
		response.Errors(c, http.StatusInternalServerError, "internal server error")
	}
}

// Create POST /api/contacts/:contactId/addresses
func (h *AddressHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	a, err := h.Svc.Create(c.Request.Context(), user, contactID, application.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, toAddressResponse(a))
}

// Get GET /api/contacts/:contactId/addresses/:addressId
func (h *AddressHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}
	addressID, ok := addressIDParam(c)
	if !ok {
		return
	}

	a, err := h.Svc.Get(c.Request.Context(), user, contactID, addressID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Data(c, http.StatusOK, toAddressResponse(a))
}

// Update PUT /api/contacts/:contactId/addresses/:addressId
func (h *AddressHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}
	addressID, ok := addressIDParam(c)
	if !ok {
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	a, err := h.Svc.Update(c.Request.Context(), user, contactID, addressID, application.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Data(c, http.StatusOK, toAddressResponse(a))
}

// Remove DELETE /api/contacts/:contactId/addresses/:addressId
func (h *AddressHandler) Remove(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}
	addressID, ok := addressIDParam(c)
	if !ok {
		return
	}

	if err := h.Svc.Remove(c.Request.Context(), user, contactID, addressID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Data(c, http.StatusOK, true)
}

// List GET /api/contacts/:contactId/addresses
func (h *AddressHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contactID, ok := contactIDParam(c)
	if !ok {
		return
	}

	list, err := h.Svc.List(c.Request.Context(), user, contactID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]addressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAddressResponse(a))
	}

	response.Data(c, http.StatusOK, out)
}
