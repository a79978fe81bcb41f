package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// gradingFixedWidth is the table space taken by every grading column except the observation.
const gradingFixedWidth = 70

// WriteGradingResults outputs gradings, dispatching based on the output format configured.
func WriteGradingResults(gradings []schema.Grading, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONGradings(w, gradings)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVGradings(w, gradings, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGradingTable(w, gradings, cfg, fmtFloat, intFmt)
		}, "Wrote table")
	}
	return nil
}

// writeGradingTable generates and writes the human-readable table.
func writeGradingTable(w io.Writer, gradings []schema.Grading, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "ID", "Recording", "Type", "Author", "Score", "Label", "Created", "Observation"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxObs := getMaxTextWidth(cfg, gradingFixedWidth)
	var data [][]string
	total := 0.0
	for i, g := range gradings {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf(intFmt, g.ID),
			fmt.Sprintf(intFmt, g.RecordingID),
			string(g.Type),
			formatAuthor(g),
			fmtFloat(g.GlobalScore),
			scoreLabel(cfg, g.GlobalScore),
			g.CreatedAt.Format(contract.DateTimeFormat),
			truncateText(g.GlobalObservation, maxObs),
		})
		total += g.GlobalScore
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if len(gradings) == 0 {
		_, err := fmt.Fprintln(w, "No gradings found")
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d gradings (average score: %s)\n", len(gradings), fmtFloat(total/float64(len(gradings))))
	return err
}

// writeCSVGradings writes gradings in CSV format.
func writeCSVGradings(w io.Writer, gradings []schema.Grading, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"id",
		"recording_id",
		"type",
		"author",
		"score",
		"label",
		"created_at",
		"ideal_parameter_id",
		"observation",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, g := range gradings {
			rec := []string{
				strconv.Itoa(i + 1),
				fmt.Sprintf(intFmt, g.ID),
				fmt.Sprintf(intFmt, g.RecordingID),
				string(g.Type),
				formatAuthor(g),
				fmtFloat(g.GlobalScore),
				contract.GetPlainLabel(g.GlobalScore),
				g.CreatedAt.Format(contract.DateTimeFormat),
				formatOptionalID(g.IdealParameterID),
				g.GlobalObservation,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONGradings writes gradings in JSON format with rank and label added.
func writeJSONGradings(w io.Writer, gradings []schema.Grading) error {
	type JSONGrading struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.Grading
	}

	output := make([]JSONGrading, len(gradings))
	for i, g := range gradings {
		output[i] = JSONGrading{
			Rank:    i + 1,
			Label:   contract.GetPlainLabel(g.GlobalScore),
			Grading: g,
		}
	}
	return writeJSON(w, output)
}
