package schema

// AIGradingPayload is the scoring delta an external AI grader supplies for an existing grading.
type AIGradingPayload struct {
	GradingID         int64             `json:"gradingId"`
	GlobalScore       float64           `json:"globalScore"`
	GlobalObservation *string           `json:"globalObservation"`
	Details           []AIDetailScore   `json:"details"`
	Feedback          []AIFeedbackEntry `json:"feedback"`
}

// AIDetailScore is one per-criterion entry of an AI grading payload.
type AIDetailScore struct {
	CriterionID int64   `json:"criterionId"`
	Score       float64 `json:"score"`
	Comment     *string `json:"comment"`
}

// AIFeedbackEntry is one feedback entry of an AI grading payload.
type AIFeedbackEntry struct {
	Observation string `json:"observation"`
	Author      string `json:"author"`
}

// GradingAggregate is a grading together with its current detail scores.
// Feedback is only populated by read paths that ask for it.
type GradingAggregate struct {
	Grading
	Details  []DetailScore   `json:"details"`
	Feedback []FeedbackEntry `json:"feedback,omitempty"`
}
