package gradebook

import (
	"fmt"
	"strings"

	"github.com/ytget/gradebook/internal/model"
)

// AddSubjectCommand creates a new subject at the end of the list
type AddSubjectCommand struct {
	Name string `json:"name" validate:"notblank,utf8"`
}

// Apply appends a new subject to subjects
func (c AddSubjectCommand) Apply(subjects []*model.Subject) ([]*model.Subject, *model.Subject, error) {
	subject := model.NewSubject(strings.TrimSpace(c.Name))
	return append(subjects, subject), subject, nil
}

// AddEvaluationCommand appends a graded evaluation to an existing subject
type AddEvaluationCommand struct {
	SubjectID string  `json:"subject_id" validate:"required"`
	Name      string  `json:"name" validate:"notblank,utf8"`
	Grade     float64 `json:"grade" validate:"gte=1,lte=7"`
	Weight    int     `json:"weight" validate:"gte=1,lte=100"`
}

// Apply appends the evaluation to the subject with the matching ID
func (c AddEvaluationCommand) Apply(subjects []*model.Subject) ([]*model.Subject, *model.Subject, error) {
	subject := findSubject(subjects, c.SubjectID)
	if subject == nil {
		return subjects, nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, c.SubjectID)
	}

	subject.AddEvaluation(model.Evaluation{
		Name:   strings.TrimSpace(c.Name),
		Grade:  c.Grade,
		Weight: c.Weight,
	})
	return subjects, subject, nil
}

func findSubject(subjects []*model.Subject, id string) *model.Subject {
	for _, subject := range subjects {
		if subject.ID == id {
			return subject
		}
	}
	return nil
}
