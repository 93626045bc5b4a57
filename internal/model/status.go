package model

// Status represents the standing of a subject derived from its grades
type Status string

const (
	// StatusExempt means the current average already reaches the exemption threshold
	StatusExempt Status = "exempt"

	// StatusAtRisk means the worst-case projection falls below the passing grade
	StatusAtRisk Status = "at_risk"

	// StatusInProgress means the subject is neither exempt nor at risk yet
	StatusInProgress Status = "in_progress"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}
