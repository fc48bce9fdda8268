package dashboard

import "context"

type DashboardService interface {
	// GetSummary runs the counters concurrently over the local current day
	GetSummary(ctx context.Context) (SummaryResponse, error)

	// GetToday returns the newest aggregated attendance records of the local current day
	GetToday(ctx context.Context) (TodayResponse, error)
}
