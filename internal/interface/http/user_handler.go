package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aditrahmn/contact-management-api/internal/application"
	"github.com/aditrahmn/contact-management-api/internal/interface/middleware"
	"github.com/aditrahmn/contact-management-api/pkg/response"
	"github.com/aditrahmn/contact-management-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=1,max=100"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=1,max=100"`
}

// Pointer fields tell absent apart from provided-but-empty: a missing key
// stays nil and is skipped, while `"name": ""` binds non-nil and fails min=1.
type updateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Password *string `json:"password" binding:"omitempty,min=1,max=100"`
}

type userResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// Register POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserExists) {
			response.Errors(c, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Errors(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Data(c, http.StatusOK, userResponse{Username: u.Username, Name: u.Name})
}

// Login POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidLogin) {
			response.Errors(c, http.StatusUnauthorized, err.Error())
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Errors(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Data(c, http.StatusOK, userResponse{Username: u.Username, Name: u.Name, Token: u.Token})
}

// Get GET /api/users/current
func (h *UserHandler) Get(c *gin.Context) {
	u := middleware.CurrentUser(c)
	response.Data(c, http.StatusOK, userResponse{Username: u.Username, Name: u.Name})
}

// Update PATCH /api/users/current
func (h *UserHandler) Update(c *gin.Context) {
	u := middleware.CurrentUser(c)

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), u, application.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.Logger.WithError(err).Error("update user failed")
		response.Errors(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Data(c, http.StatusOK, userResponse{Username: u.Username, Name: u.Name})
}

// Logout DELETE /api/users/current
func (h *UserHandler) Logout(c *gin.Context) {
	u := middleware.CurrentUser(c)

	if err := h.Svc.Logout(c.Request.Context(), u); err != nil {
		h.Logger.WithError(err).Error("logout failed")
		response.Errors(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Data(c, http.StatusOK, true)
}

// UploadAvatar POST /api/users/current/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	u := middleware.CurrentUser(c)

	fh, err := c.FormFile("file")
	if err != nil {
		response.Errors(c, http.StatusBadRequest, map[string]string{"file": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Errors(c, http.StatusBadRequest, map[string]string{"file": "cannot be read"})
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), u, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).Error("avatar upload failed")
		response.Errors(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Data(c, http.StatusOK, gin.H{"avatar_url": url})
}
