package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
	"github.com/stafftide/intranet-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GeneratePeriod(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	ListMyPeriods(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	periodService payroll.PeriodService
}

func NewPayrollHandler(periodService payroll.PeriodService) PayrollHandler {
	return &payrollHandlerImpl{
		periodService: periodService,
	}
}

// GeneratePeriod implements PayrollHandler.
func (h *payrollHandlerImpl) GeneratePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	period, err := h.periodService.GeneratePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period registered successfully", period)
}

// GetPeriod implements PayrollHandler.
func (h *payrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	period, err := h.periodService.GetPeriod(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, period)
}

// ListMyPeriods implements PayrollHandler.
func (h *payrollHandlerImpl) ListMyPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.periodService.ListMyPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}
