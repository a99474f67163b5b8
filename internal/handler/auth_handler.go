package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qads-development/QADS-Backend/internal/apperr"
	"github.com/qads-development/QADS-Backend/internal/model"
	"github.com/qads-development/QADS-Backend/pkg/logger"
	"github.com/qads-development/QADS-Backend/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = bcrypt.DefaultCost

// OnboardingRequest is the sign-up form of a new business client.
// Services, platforms and the free-text extras are accepted but not stored.
type OnboardingRequest struct {
	BusinessName      string   `json:"business_name" validate:"required"`
	BusinessWebsite   string   `json:"business_website"`
	BusinessSector    string   `json:"business_sector"`
	Revenue           string   `json:"revenue"`
	Goals             string   `json:"goals"`
	CustomGoalText    *string  `json:"custom_goal_text,omitempty"`
	Email             string   `json:"email" validate:"required,email"`
	JobTitle          string   `json:"job_title"`
	Services          []string `json:"services"`
	OtherServiceText  *string  `json:"other_service_text,omitempty"`
	Platforms         []string `json:"platforms"`
	GeneratedUsername string   `json:"generated_username" validate:"min=3"`
	GeneratedPassword string   `json:"generated_password" validate:"min=6"`
}

// LoginRequest carries client credentials
type LoginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	SessionID  string `json:"session_id"`
	ClientName string `json:"client_name"`
}

// Onboard registers a new client account
func (h *Handler) Onboard(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.OnboardingCounter.Inc()

	var req OnboardingRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		log.Warn("Invalid onboarding request", zap.Error(err))
		return respondError(c, http.StatusBadRequest, msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.GeneratedPassword), h.bcryptCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return respondError(c, http.StatusInternalServerError, "Onboarding failed")
	}

	client := model.NewClient(model.ClientProfile{
		BusinessName:    req.BusinessName,
		BusinessWebsite: req.BusinessWebsite,
		BusinessSector:  req.BusinessSector,
		Revenue:         req.Revenue,
		Goals:           req.Goals,
		Email:           req.Email,
		JobTitle:        req.JobTitle,
	}, req.GeneratedUsername, string(hash))

	if err := h.store.CreateClient(c.Request().Context(), client); err != nil {
		if errors.Is(err, apperr.ErrConstraintViolation) {
			log.Warn("Username already taken", zap.String("username", req.GeneratedUsername))
			prometheus.RecordAuthError("duplicate_username")
			return respondError(c, http.StatusConflict, "Username already exists")
		}
		return respondStoreError(c, log, err, "Failed to create client")
	}

	log.Info("Client onboarded",
		zap.String("client_id", client.ID),
		zap.String("business_name", client.BusinessName))
	return respondOK(c, http.StatusCreated, "Client created successfully", client)
}

// Login verifies credentials and opens a session
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req LoginRequest
	if msg, err := bindAndValidate(c, &req); err != nil {
		log.Warn("Invalid login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return respondError(c, http.StatusBadRequest, msg)
	}

	client, err := h.store.GetClientByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFoundOrNotOwned) {
			log.Warn("Login for unknown username", zap.String("username", req.Username))
			prometheus.RecordAuthError("invalid_credentials")
			return respondError(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return respondStoreError(c, log, err, "Failed to look up client")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("username", req.Username))
		prometheus.RecordAuthError("invalid_credentials")
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.sessions.CreateSession(client.ID)
	if err != nil {
		log.Error("Failed to create session", zap.Error(err))
		prometheus.RecordAuthError("session_creation_failed")
		return respondError(c, http.StatusInternalServerError, "Login failed")
	}
	prometheus.SetActiveSessions(h.sessions.Len())

	log.Info("Client logged in", zap.String("client_id", client.ID))
	return respondOK(c, http.StatusOK, "Login successful", LoginResponse{
		SessionID:  token,
		ClientName: client.BusinessName,
	})
}
