package payroll

import "context"

type PeriodService interface {
	// GeneratePeriod categorizes the employee's closed work intervals inside the
	// requested range, computes gross/net pay and registers the period.
	GeneratePeriod(ctx context.Context, req GeneratePeriodRequest) (PeriodResponse, error)

	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)
	ListMyPeriods(ctx context.Context) ([]PeriodResponse, error)
}
