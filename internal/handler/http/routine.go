package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/operation"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/report"
	"github.com/expedicaonl/workforce-backend-go/internal/handler/http/response"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
)

type RoutineHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type RoutineHandlerImpl struct {
	routineService operation.RoutineService
	reportService  report.ReportService
}

func NewRoutineHandler(routineService operation.RoutineService, reportService report.ReportService) RoutineHandler {
	return &RoutineHandlerImpl{
		routineService: routineService,
		reportService:  reportService,
	}
}

// dateShiftParams pulls and checks the query pair shared by the read
// endpoints.
func dateShiftParams(r *http.Request) (date, shift string, ok bool) {
	date = r.URL.Query().Get("date")
	shift = r.URL.Query().Get("shift")

	if _, valid := validator.IsValidDate(date); !valid {
		return "", "", false
	}
	if !validator.IsValidShift(shift) {
		return "", "", false
	}
	return date, shift, true
}

// Get implements RoutineHandler.
func (h *RoutineHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	date, shift, ok := dateShiftParams(r)
	if !ok {
		response.BadRequest(w, "date (YYYY-MM-DD) and shift query parameters are required", nil)
		return
	}

	resp, err := h.routineService.GetRoutine(r.Context(), date, shift)
	if err != nil {
		slog.Error("GetRoutine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements RoutineHandler.
func (h *RoutineHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq operation.RoutineUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateRoutine decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.routineService.UpdateRoutine(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateRoutine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Routine updated", result)
}

// Report implements RoutineHandler.
func (h *RoutineHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	date, shift, ok := dateShiftParams(r)
	if !ok {
		response.BadRequest(w, "date (YYYY-MM-DD) and shift query parameters are required", nil)
		return
	}

	snapshot, err := h.reportService.GetSnapshot(r.Context(), date, shift)
	if err != nil {
		slog.Error("GetSnapshot service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}
