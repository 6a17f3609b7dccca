package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
	"github.com/stafftide/intranet-backend-go/internal/domain/worktime"
	"github.com/stafftide/intranet-backend-go/internal/pkg/validator"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name: "validation errors",
			err: validator.ValidationErrors{
				{Field: "period_start", Message: "must be a date in YYYY-MM-DD format"},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "period overlap",
			err: &payroll.OverlapError{
				ConflictingID:    "abc",
				ConflictingStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				ConflictingEnd:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			},
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "wrapped overlap",
			err:        fmt.Errorf("registering: %w", &payroll.OverlapError{ConflictingID: "abc"}),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "period not found",
			err:        payroll.ErrPeriodNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "invalid period",
			err:        payroll.ErrInvalidPeriod,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "unsupported country",
			err:        fmt.Errorf("%w: XX", payroll.ErrUnsupportedCountry),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "session already open",
			err:        worktime.ErrSessionAlreadyOpen,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "no open session",
			err:        worktime.ErrNoOpenSession,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body Response
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Success {
				t.Error("expected success=false")
			}
			if body.Error == nil || body.Error.Code != tt.wantCode {
				t.Errorf("error code = %v, want %s", body.Error, tt.wantCode)
			}
		})
	}
}

func TestHandleErrorOverlapDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &payroll.OverlapError{
		ConflictingID:    "abc",
		ConflictingStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ConflictingEnd:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	})

	var body Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error == nil {
		t.Fatal("expected error detail")
	}
	if body.Error.Details["conflicting_period_id"] != "abc" {
		t.Errorf("conflicting_period_id = %q, want abc", body.Error.Details["conflicting_period_id"])
	}
	if body.Error.Details["conflicting_start"] != "2025-01-01" {
		t.Errorf("conflicting_start = %q", body.Error.Details["conflicting_start"])
	}
}
