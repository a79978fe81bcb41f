package schema

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}

// StringPtr returns a pointer to v.
func StringPtr(v string) *string {
	return &v
}

// IsAutomated reports whether the grading has no human author.
func (g Grading) IsAutomated() bool {
	return g.UserID == nil
}

// DetailFor returns the first detail score for criterionID.
func (a GradingAggregate) DetailFor(criterionID int64) (DetailScore, bool) {
	for _, d := range a.Details {
		if d.CriterionID == criterionID {
			return d, true
		}
	}
	return DetailScore{}, false
}
