package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gradebook/internal/gradebook"
	"github.com/ytget/gradebook/internal/model"
)

var (
	errInvalidGrade  = errors.New("invalid grade")
	errInvalidWeight = errors.New("invalid weight")
)

// SubjectTab renders one subject: the evaluation form, the evaluation list,
// the graded weight and the current status.
type SubjectTab struct {
	subjectID    string
	tracker      gradebook.Tracker
	localization *Localization
	decimals     func() int
	onError      func(error)

	evaluations []model.Evaluation
	summary     model.Summary

	// UI components
	nameEntry   *widget.Entry
	gradeEntry  *widget.Entry
	weightEntry *widget.Entry
	addBtn      *widget.Button
	list        *widget.List
	progress    *widget.ProgressBar
	statusText  *canvas.Text
	content     *fyne.Container
}

// NewSubjectTab creates the tab content for subject
func NewSubjectTab(subject *model.Subject, tracker gradebook.Tracker, localization *Localization, decimals func() int) *SubjectTab {
	st := &SubjectTab{
		subjectID:    subject.ID,
		tracker:      tracker,
		localization: localization,
		decimals:     decimals,
	}
	st.createUI()
	st.Update(subject)
	return st
}

// SetErrorCallback sets the function used to report failures to the user
func (st *SubjectTab) SetErrorCallback(onError func(error)) {
	st.onError = onError
}

// Content returns the root container of the tab
func (st *SubjectTab) Content() fyne.CanvasObject {
	return st.content
}

// createUI creates and arranges the tab components
func (st *SubjectTab) createUI() {
	st.nameEntry = widget.NewEntry()
	st.nameEntry.SetPlaceHolder(st.localization.GetText(KeyEvaluationName))
	st.nameEntry.OnSubmitted = func(string) { st.onAddClick() }

	st.gradeEntry = widget.NewEntry()
	st.gradeEntry.SetPlaceHolder(GradeEntryHint)
	st.gradeEntry.SetText(DefaultGradeText)

	st.weightEntry = widget.NewEntry()
	st.weightEntry.SetPlaceHolder(WeightEntryHint)
	st.weightEntry.SetText(DefaultWeightText)

	st.addBtn = widget.NewButton(st.localization.GetText(KeyAdd), st.onAddClick)
	st.addBtn.Importance = widget.HighImportance

	gradeBox := container.NewGridWrap(
		fyne.NewSize(GradeEntryWidth, st.gradeEntry.MinSize().Height),
		st.gradeEntry,
	)
	weightBox := container.NewGridWrap(
		fyne.NewSize(WeightEntryWidth, st.weightEntry.MinSize().Height),
		st.weightEntry,
	)
	form := container.NewBorder(nil, nil, nil, container.NewHBox(gradeBox, weightBox, st.addBtn), st.nameEntry)

	st.list = widget.NewList(
		func() int { return len(st.evaluations) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(st.evaluations) {
				return
			}
			obj.(*widget.Label).SetText(formatEvaluation(st.evaluations[id]))
		},
	)

	st.progress = widget.NewProgressBar()
	st.progress.Min = 0
	st.progress.Max = model.FullWeight
	st.progress.TextFormatter = func() string {
		return formatProgress(st.localization, st.summary)
	}

	st.statusText = canvas.NewText("", color.White)
	st.statusText.TextStyle = fyne.TextStyle{Bold: true}

	st.content = container.NewBorder(
		form,
		container.NewVBox(st.progress, st.statusText),
		nil,
		nil,
		st.list,
	)
}

// Update re-renders the tab from a subject snapshot
func (st *SubjectTab) Update(subject *model.Subject) {
	if subject == nil || subject.ID != st.subjectID {
		return
	}

	st.evaluations = subject.Evaluations
	st.list.Refresh()

	summary := model.Summarize(subject)
	st.summary = summary
	st.progress.SetValue(float64(gradedWeight(summary)))

	st.statusText.Text = formatStatus(st.localization, summary, st.decimals())
	st.statusText.Color = statusColor(summary.Status)
	st.statusText.Refresh()
}

// RefreshTexts updates the localized texts of the tab
func (st *SubjectTab) RefreshTexts() {
	st.nameEntry.SetPlaceHolder(st.localization.GetText(KeyEvaluationName))
	st.addBtn.SetText(st.localization.GetText(KeyAdd))
	if subject, ok := st.tracker.Subject(st.subjectID); ok {
		st.Update(subject)
	}
}

// onAddClick handles the add button click
func (st *SubjectTab) onAddClick() {
	name := strings.TrimSpace(st.nameEntry.Text)
	if name == "" {
		return
	}

	grade, weight, err := parseEvaluationInput(st.gradeEntry.Text, st.weightEntry.Text)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidGrade):
			st.reportError(errors.New(st.localization.GetText(KeyInvalidGrade)))
		case errors.Is(err, errInvalidWeight):
			st.reportError(errors.New(st.localization.GetText(KeyInvalidWeight)))
		default:
			st.reportError(err)
		}
		return
	}

	updated, err := st.tracker.AddEvaluation(st.subjectID, name, grade, weight)
	if err != nil {
		log.Printf("Failed to add evaluation %q to subject %s: %v", name, st.subjectID, err)
		st.reportError(err)
		if updated == nil {
			return
		}
	}

	st.nameEntry.SetText("")
}

func (st *SubjectTab) reportError(err error) {
	if st.onError != nil {
		st.onError(err)
	}
}

// parseEvaluationInput converts the grade and weight entries to numbers.
// Range checks are left to the gradebook service.
func parseEvaluationInput(gradeText, weightText string) (float64, int, error) {
	gradeText = strings.ReplaceAll(strings.TrimSpace(gradeText), DecimalComma, ".")
	grade, err := strconv.ParseFloat(gradeText, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidGrade, gradeText)
	}

	weight, err := strconv.Atoi(strings.TrimSpace(weightText))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidWeight, weightText)
	}

	return grade, weight, nil
}

// formatGrade prints a grade with at least one decimal, e.g. "6.0" or "5.25"
func formatGrade(grade float64) string {
	text := strconv.FormatFloat(grade, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// formatEvaluation renders one list row, e.g. "Test 1 - 6.0 (60%)"
func formatEvaluation(e model.Evaluation) string {
	return fmt.Sprintf(EvaluationFormat, e.Name, formatGrade(e.Grade), e.Weight)
}

// gradedWeight is the progress bar value, capped at a full course
func gradedWeight(summary model.Summary) int {
	if summary.TotalWeight > model.FullWeight {
		return model.FullWeight
	}
	return summary.TotalWeight
}

// formatProgress renders the progress bar text, e.g. "60% | Remaining: 40%"
func formatProgress(l *Localization, summary model.Summary) string {
	return fmt.Sprintf(ProgressFormat, gradedWeight(summary), l.GetText(KeyRemaining), summary.Remaining)
}

// formatStatus renders the status line, e.g. "🟢 Exempt | Average: 5.23"
func formatStatus(l *Localization, summary model.Summary, decimals int) string {
	var icon, label string
	switch summary.Status {
	case model.StatusExempt:
		icon, label = IconExempt, l.GetText(KeyStatusExempt)
	case model.StatusAtRisk:
		icon, label = IconAtRisk, l.GetText(KeyStatusAtRisk)
	default:
		icon, label = IconInProgress, l.GetText(KeyStatusInProgress)
	}

	average := formatGrade(model.RoundTo(summary.Average, decimals))
	return fmt.Sprintf("%s %s%s%s: %s", icon, label, StatusSeparator, l.GetText(KeyAverage), average)
}

// statusColor returns the color used for the status line
func statusColor(status model.Status) color.Color {
	switch status {
	case model.StatusExempt:
		return ColorExempt
	case model.StatusAtRisk:
		return ColorAtRisk
	default:
		return ColorInProgress
	}
}
