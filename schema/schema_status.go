package schema

import "time"

// StoreStatus represents the status of the grading store.
type StoreStatus struct {
	Backend         string           `json:"backend"`
	Connected       bool             `json:"connected"`
	TotalGradings   int              `json:"total_gradings"`
	LastGradingID   int64            `json:"last_grading_id"`
	LastGradingTime time.Time        `json:"last_grading_time"`
	TableSizes      map[string]int64 `json:"table_sizes"`
}
