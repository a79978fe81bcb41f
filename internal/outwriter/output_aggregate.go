package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/4NDR3-S01/ExposIA/core/algo"
	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	detailFixedWidth   = 55
	feedbackFixedWidth = 40
)

// WriteAggregateResult outputs a grading aggregate, dispatching based on the output format configured.
func WriteAggregateResult(agg schema.GradingAggregate, criteria []schema.Criterion, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONAggregate(w, agg, criteria)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVAggregate(w, agg, criteria, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAggregateTable(w, agg, criteria, cfg, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// criterionIndex maps criterion ids to their definitions.
func criterionIndex(criteria []schema.Criterion) map[int64]schema.Criterion {
	index := make(map[int64]schema.Criterion, len(criteria))
	for _, c := range criteria {
		index[c.ID] = c
	}
	return index
}

// criterionName returns the criterion name, or its id when the rubric does not know it.
func criterionName(index map[int64]schema.Criterion, id int64) string {
	if c, ok := index[id]; ok && c.Name != "" {
		return c.Name
	}
	return "#" + strconv.FormatInt(id, 10)
}

// writeAggregateTable prints the grading summary followed by detail and feedback tables.
func writeAggregateTable(w io.Writer, agg schema.GradingAggregate, criteria []schema.Criterion, cfg *contract.Config, fmtFloat func(float64) string) error {
	g := agg.Grading
	if _, err := fmt.Fprintf(w, "Grading %d (recording %d, %s by %s)\n", g.ID, g.RecordingID, g.Type, formatAuthor(g)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Global Score: %s %s\n", fmtFloat(g.GlobalScore), scoreLabel(cfg, g.GlobalScore)); err != nil {
		return err
	}
	if weighted, ok := algo.WeightedScore(agg.Details, criteria); ok {
		if _, err := fmt.Fprintf(w, "Weighted Score: %s\n", fmtFloat(weighted)); err != nil {
			return err
		}
	}
	if g.GlobalObservation != "" {
		if _, err := fmt.Fprintf(w, "Observation: %s\n", g.GlobalObservation); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Created: %s\n", g.CreatedAt.Format(contract.DateTimeFormat)); err != nil {
		return err
	}

	index := criterionIndex(criteria)
	details := tablewriter.NewWriter(w)
	details.Header([]string{"Criterion", "Weight", "Score", "Label", "Comment"})
	details.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	maxComment := getMaxTextWidth(cfg, detailFixedWidth)
	var rows [][]string
	for _, d := range agg.Details {
		weight := ""
		if c, ok := index[d.CriterionID]; ok {
			weight = fmtFloat(c.Weight)
		}
		rows = append(rows, []string{
			criterionName(index, d.CriterionID),
			weight,
			fmtFloat(d.Score),
			scoreLabel(cfg, d.Score),
			truncateText(d.Comment, maxComment),
		})
	}
	if err := details.Bulk(rows); err != nil {
		return err
	}
	if err := details.Render(); err != nil {
		return err
	}

	if len(agg.Feedback) == 0 {
		return nil
	}
	feedback := tablewriter.NewWriter(w)
	feedback.Header([]string{"Author", "When", "Observation"})
	maxObs := getMaxTextWidth(cfg, feedbackFixedWidth)
	rows = rows[:0]
	for _, f := range agg.Feedback {
		rows = append(rows, []string{
			f.Author,
			f.CreatedAt.Format(contract.DateTimeFormat),
			truncateText(f.Observation, maxObs),
		})
	}
	if err := feedback.Bulk(rows); err != nil {
		return err
	}
	return feedback.Render()
}

// writeCSVAggregate writes one CSV row per detail score of the grading.
func writeCSVAggregate(w io.Writer, agg schema.GradingAggregate, criteria []schema.Criterion, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"grading_id",
		"recording_id",
		"global_score",
		"criterion_id",
		"criterion",
		"score",
		"label",
		"comment",
	}
	index := criterionIndex(criteria)
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, d := range agg.Details {
			rec := []string{
				fmt.Sprintf(intFmt, agg.ID),
				fmt.Sprintf(intFmt, agg.RecordingID),
				fmtFloat(agg.GlobalScore),
				fmt.Sprintf(intFmt, d.CriterionID),
				criterionName(index, d.CriterionID),
				fmtFloat(d.Score),
				contract.GetPlainLabel(d.Score),
				d.Comment,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONAggregate writes the aggregate in JSON format with label and weighted score added.
func writeJSONAggregate(w io.Writer, agg schema.GradingAggregate, criteria []schema.Criterion) error {
	type JSONAggregate struct {
		Label         string   `json:"label"`
		WeightedScore *float64 `json:"weightedScore,omitempty"`
		schema.GradingAggregate
	}

	out := JSONAggregate{
		Label:            contract.GetPlainLabel(agg.GlobalScore),
		GradingAggregate: agg,
	}
	if weighted, ok := algo.WeightedScore(agg.Details, criteria); ok {
		out.WeightedScore = &weighted
	}
	return writeJSON(w, out)
}
