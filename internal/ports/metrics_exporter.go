package ports

import "context"

// MetricsExporter exports board metrics to an external observability system.
type MetricsExporter interface {
	// ExportBoardMetrics records the board state after an accepted mutation.
	ExportBoardMetrics(ctx context.Context, m *BoardMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// BoardMetrics summarizes one snapshot of the board.
type BoardMetrics struct {
	Total    int64
	Active   int64
	Finished int64
}
