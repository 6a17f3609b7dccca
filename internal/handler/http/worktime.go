package http

import (
	"net/http"

	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
	"github.com/stafftide/intranet-backend-go/internal/handler/http/response"
)

type WorktimeHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListIntervals(w http.ResponseWriter, r *http.Request)
}

type worktimeHandlerImpl struct {
	sessionService worktime.SessionService
}

func NewWorktimeHandler(sessionService worktime.SessionService) WorktimeHandler {
	return &worktimeHandlerImpl{
		sessionService: sessionService,
	}
}

// ClockIn implements WorktimeHandler.
func (h *worktimeHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	interval, err := h.sessionService.ClockIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in successfully", interval)
}

// ClockOut implements WorktimeHandler.
func (h *worktimeHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	interval, err := h.sessionService.ClockOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", interval)
}

// ListIntervals implements WorktimeHandler.
func (h *worktimeHandlerImpl) ListIntervals(w http.ResponseWriter, r *http.Request) {
	filter := worktime.ListIntervalsRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	intervals, err := h.sessionService.ListIntervals(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, intervals)
}
