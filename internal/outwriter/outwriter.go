// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteGradings prints a list of gradings using the configured output format.
func (ow *OutWriter) WriteGradings(gradings []schema.Grading, cfg *contract.Config) error {
	return WriteGradingResults(gradings, cfg)
}

// WriteAggregate prints one grading with its details and feedback using the configured output format.
// Criteria are used to resolve names and weights; missing criteria are rendered by id.
func (ow *OutWriter) WriteAggregate(agg schema.GradingAggregate, criteria []schema.Criterion, cfg *contract.Config) error {
	return WriteAggregateResult(agg, criteria, cfg)
}

// WriteStatus prints the store status using the configured output format.
func (ow *OutWriter) WriteStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return WriteStoreStatus(status, cfg)
}
