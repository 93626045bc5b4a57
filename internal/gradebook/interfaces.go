package gradebook

import (
	"github.com/ytget/gradebook/internal/model"
)

// Repository loads and saves the complete list of subjects.
type Repository interface {
	Load() ([]*model.Subject, error)
	Save(subjects []*model.Subject) error
}

// Tracker defines the interface for the gradebook service.
type Tracker interface {
	SetUpdateCallback(func(*model.Subject))
	Open() error
	Execute(cmd Command) (*model.Subject, error)
	AddSubject(name string) (*model.Subject, error)
	AddEvaluation(subjectID, name string, grade float64, weight int) (*model.Subject, error)
	Subjects() []*model.Subject
	Subject(id string) (*model.Subject, bool)
	Summary(id string) (model.Summary, error)
	Save() error
}

// Command is a pure mutation over the subject list. Apply returns the new
// list and the subject it touched.
type Command interface {
	Apply(subjects []*model.Subject) ([]*model.Subject, *model.Subject, error)
}
