// Package parquet exports grading data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/parquet-go/parquet-go"
)

// GradingRow is the Parquet layout of a grading.
type GradingRow struct {
	GradingID         int64     `parquet:"grading_id,snappy"`
	RecordingID       int64     `parquet:"recording_id,snappy"`
	UserID            *int64    `parquet:"user_id,optional,snappy"`
	GlobalScore       float64   `parquet:"global_score,snappy"`
	GlobalObservation string    `parquet:"global_observation,snappy"`
	GradingType       string    `parquet:"grading_type,snappy"`
	CreatedAt         time.Time `parquet:"created_at,snappy"`
	IdealParameterID  *int64    `parquet:"ideal_parameter_id,optional,snappy"`

	// ScoreLabel is the plain label of the global score
	ScoreLabel string `parquet:"score_label,snappy"`
}

// DetailScoreRow is the Parquet layout of a detail score.
type DetailScoreRow struct {
	DetailID    int64   `parquet:"detail_id,snappy"`
	GradingID   int64   `parquet:"grading_id,snappy"`
	CriterionID int64   `parquet:"criterion_id,snappy"`
	Score       float64 `parquet:"score,snappy"`
	Comment     *string `parquet:"comment,optional,snappy"`
	FragmentID  *int64  `parquet:"fragment_id,optional,snappy"`
	SlideID     *int64  `parquet:"slide_id,optional,snappy"`
}

// FeedbackRow is the Parquet layout of a feedback entry.
type FeedbackRow struct {
	FeedbackID  int64     `parquet:"feedback_id,snappy"`
	GradingID   int64     `parquet:"grading_id,snappy"`
	Observation string    `parquet:"observation,snappy"`
	Author      string    `parquet:"author,snappy"`
	CreatedAt   time.Time `parquet:"created_at,snappy"`
}

// ExportResult lists the files written by an export.
type ExportResult struct {
	GradingsFile string
	DetailsFile  string
	FeedbackFile string
	Gradings     int
	Details      int
	Feedback     int
}

// writeRows writes a slice of rows to a Parquet file whose schema is derived from T.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteGradingsParquet writes grading rows to outputPath.
func WriteGradingsParquet(data []GradingRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteDetailScoresParquet writes detail score rows to outputPath.
func WriteDetailScoresParquet(data []DetailScoreRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteFeedbackParquet writes feedback rows to outputPath.
func WriteFeedbackParquet(data []FeedbackRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// ConvertGradings converts gradings to Parquet rows.
func ConvertGradings(gradings []schema.Grading) []GradingRow {
	result := make([]GradingRow, len(gradings))
	for i, g := range gradings {
		result[i] = GradingRow{
			GradingID:         g.ID,
			RecordingID:       g.RecordingID,
			UserID:            g.UserID,
			GlobalScore:       g.GlobalScore,
			GlobalObservation: g.GlobalObservation,
			GradingType:       string(g.Type),
			CreatedAt:         g.CreatedAt.UTC(),
			IdealParameterID:  g.IdealParameterID,
			ScoreLabel:        contract.GetPlainLabel(g.GlobalScore),
		}
	}
	return result
}

// ConvertDetailScores converts detail scores to Parquet rows. Empty comments become null.
func ConvertDetailScores(details []schema.DetailScore) []DetailScoreRow {
	result := make([]DetailScoreRow, len(details))
	for i, d := range details {
		row := DetailScoreRow{
			DetailID:    d.ID,
			GradingID:   d.GradingID,
			CriterionID: d.CriterionID,
			Score:       d.Score,
			FragmentID:  d.FragmentID,
			SlideID:     d.SlideID,
		}
		if d.Comment != "" {
			row.Comment = schema.StringPtr(d.Comment)
		}
		result[i] = row
	}
	return result
}

// ConvertFeedback converts feedback entries to Parquet rows.
func ConvertFeedback(entries []schema.FeedbackEntry) []FeedbackRow {
	result := make([]FeedbackRow, len(entries))
	for i, f := range entries {
		result[i] = FeedbackRow{
			FeedbackID:  f.ID,
			GradingID:   f.GradingID,
			Observation: f.Observation,
			Author:      f.Author,
			CreatedAt:   f.CreatedAt.UTC(),
		}
	}
	return result
}

// ExportFileNames returns the three file names written for prefix.
func ExportFileNames(prefix string) (gradings, details, feedback string) {
	return prefix + ".gradings.parquet", prefix + ".details.parquet", prefix + ".feedback.parquet"
}

// Export reads every grading, detail score and feedback entry from store
// and writes them to three Parquet files named after prefix.
func Export(ctx context.Context, store contract.Store, prefix string) (ExportResult, error) {
	var result ExportResult
	if prefix == "" {
		return result, &contract.ValidationError{Field: "output-file", Reason: "an export prefix is required"}
	}
	result.GradingsFile, result.DetailsFile, result.FeedbackFile = ExportFileNames(prefix)

	gradings, err := store.ListGradings(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list gradings: %w", err)
	}
	details, err := store.ListDetailScores(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list detail scores: %w", err)
	}
	feedback, err := store.ListFeedback(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list feedback: %w", err)
	}

	if err := WriteGradingsParquet(ConvertGradings(gradings), result.GradingsFile); err != nil {
		return result, err
	}
	if err := WriteDetailScoresParquet(ConvertDetailScores(details), result.DetailsFile); err != nil {
		return result, err
	}
	if err := WriteFeedbackParquet(ConvertFeedback(feedback), result.FeedbackFile); err != nil {
		return result, err
	}

	result.Gradings = len(gradings)
	result.Details = len(details)
	result.Feedback = len(feedback)
	return result, nil
}
