package report

import "context"

// ReportService builds KPI snapshots for dashboards and printed reports.
type ReportService interface {
	// GetSnapshot computes the KPI snapshot for a (date, shift) pair.
	GetSnapshot(ctx context.Context, date, shift string) (Snapshot, error)
}
