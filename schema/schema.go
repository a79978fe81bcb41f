// Package schema has the models and payloads shared by every part of the grading service.
package schema

import "time"

// Criterion is a named rubric dimension. Weight expresses relative importance
// and is not required to sum to 1 across a rubric.
type Criterion struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

// IdealParameterSet holds the reference targets a recording is compared against.
// Extra is opaque structured text stored verbatim.
type IdealParameterSet struct {
	ID               int64   `json:"id"`
	ClarityTarget    float64 `json:"clarityTarget"`
	SpeedTarget      float64 `json:"speedTarget"`
	PauseCountTarget int     `json:"pauseCountTarget"`
	Extra            string  `json:"extra,omitempty"`
}

// Grading is the top-level evaluation of a recording.
// A nil UserID means the grading was authored by an automated process.
type Grading struct {
	ID                int64       `json:"id"`
	RecordingID       int64       `json:"recordingId"`
	UserID            *int64      `json:"userId"`
	GlobalScore       float64     `json:"globalScore"`
	GlobalObservation string      `json:"globalObservation"`
	Type              GradingType `json:"type"`
	CreatedAt         time.Time   `json:"createdAt"`
	IdealParameterID  *int64      `json:"idealParameterId"`
}

// DetailScore is the score a grading assigns to one criterion.
type DetailScore struct {
	ID          int64   `json:"id"`
	GradingID   int64   `json:"gradingId"`
	CriterionID int64   `json:"criterionId"`
	Score       float64 `json:"score"`
	Comment     string  `json:"comment,omitempty"`
	FragmentID  *int64  `json:"fragmentId,omitempty"`
	SlideID     *int64  `json:"slideId,omitempty"`
}

// FeedbackEntry is an append-only textual comment attached to a grading.
type FeedbackEntry struct {
	ID          int64     `json:"id"`
	GradingID   int64     `json:"gradingId"`
	Observation string    `json:"observation"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}
