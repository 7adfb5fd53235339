package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/sector"
	"github.com/expedicaonl/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingsHandler interface {
	GetSectorConfig(w http.ResponseWriter, r *http.Request)
	UpdateSectorConfig(w http.ResponseWriter, r *http.Request)
	GetTargets(w http.ResponseWriter, r *http.Request)
	UpdateTargets(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService sector.SettingsService
}

func NewSettingsHandler(settingsService sector.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// GetSectorConfig implements SettingsHandler.
func (h *SettingsHandlerImpl) GetSectorConfig(w http.ResponseWriter, r *http.Request) {
	shift := chi.URLParam(r, "shift")

	resp, err := h.settingsService.GetConfig(r.Context(), shift)
	if err != nil {
		slog.Error("GetSectorConfig service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateSectorConfig implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateSectorConfig(w http.ResponseWriter, r *http.Request) {
	var updateReq sector.UpdateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateSectorConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.Shift = chi.URLParam(r, "shift")

	resp, err := h.settingsService.UpdateConfig(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateSectorConfig service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sector configuration updated", resp)
}

// GetTargets implements SettingsHandler.
func (h *SettingsHandlerImpl) GetTargets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.settingsService.GetTargets(r.Context())
	if err != nil {
		slog.Error("GetTargets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateTargets implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateTargets(w http.ResponseWriter, r *http.Request) {
	var updateReq sector.UpdateTargetsRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateTargets decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.settingsService.UpdateTargets(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateTargets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Headcount targets updated", resp)
}

// intParam parses a numeric query parameter, zero when absent or malformed.
func intParam(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
