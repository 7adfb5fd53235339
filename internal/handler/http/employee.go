package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
	"github.com/expedicaonl/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ApplyStatusAction(w http.ResponseWriter, r *http.Request)
	ScheduleVacation(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	VacationSync(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.CreateEmployee(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", resp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.ListFilter{}
	if shift := r.URL.Query().Get("shift"); shift != "" {
		filter.Shift = &shift
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	resp, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		slog.Error("GetEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	resp, err := h.employeeService.UpdateEmployee(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", resp)
}

// ApplyStatusAction implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ApplyStatusAction(w http.ResponseWriter, r *http.Request) {
	var statusReq employee.StatusActionRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("ApplyStatusAction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.ID = chi.URLParam(r, "id")

	if err := h.employeeService.ApplyStatusAction(r.Context(), statusReq); err != nil {
		slog.Error("ApplyStatusAction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Status action applied", nil)
}

// ScheduleVacation implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ScheduleVacation(w http.ResponseWriter, r *http.Request) {
	var vacationReq employee.ScheduleVacationRequest

	if err := json.NewDecoder(r.Body).Decode(&vacationReq); err != nil {
		slog.Error("ScheduleVacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	vacationReq.ID = chi.URLParam(r, "id")

	resp, err := h.employeeService.ScheduleVacation(r.Context(), vacationReq)
	if err != nil {
		slog.Error("ScheduleVacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation window updated", resp)
}

// Import implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var importReq employee.ImportEmployeesRequest

	if err := json.NewDecoder(r.Body).Decode(&importReq); err != nil {
		slog.Error("ImportEmployees decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.ImportEmployees(r.Context(), importReq)
	if err != nil {
		slog.Error("ImportEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import finished", result)
}

// VacationSync implements EmployeeHandler.
func (h *EmployeeHandlerImpl) VacationSync(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.SyncVacationStatuses(r.Context(), time.Now())
	if err != nil {
		slog.Error("VacationSync service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation statuses synchronized", result)
}
