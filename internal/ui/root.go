package ui

import (
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gradebook/internal/config"
	"github.com/ytget/gradebook/internal/gradebook"
	"github.com/ytget/gradebook/internal/model"
	"github.com/ytget/gradebook/internal/platform"
	"github.com/ytget/gradebook/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	tracker      gradebook.Tracker
	settings     *config.Settings
	localization *Localization

	newSubjectBtn *widget.Button
	emptyLabel    *widget.Label
	tabs          *container.AppTabs
	subjectTabs   map[string]*SubjectTab
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, tracker gradebook.Tracker, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		tracker:      tracker,
		settings:     settings,
		localization: localization,
		subjectTabs:  make(map[string]*SubjectTab),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for subject updates
	ui.tracker.SetUpdateCallback(ui.onSubjectUpdate)

	ui.setupUI()

	for _, subject := range tracker.Subjects() {
		ui.addTab(subject)
	}
	ui.updateEmptyState()

	log.Printf("RootUI initialized with %d subjects", len(ui.subjectTabs))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.newSubjectBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyNewSubject), theme.ContentAddIcon(), ui.onNewSubjectClick)
	ui.newSubjectBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	toolbar := container.NewHBox(ui.newSubjectBtn, settingsBtn)

	ui.tabs = container.NewAppTabs()
	ui.tabs.SetTabLocation(container.TabLocationTop)

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoSubjects))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter

	center := container.NewStack(ui.tabs, container.NewCenter(ui.emptyLabel))

	content := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		center,  // center - one tab per subject
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	newSubjectItem := fyne.NewMenuItem(ui.localization.GetText(KeyNewSubject), ui.onNewSubjectClick)
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealDataFile), ui.onRevealDataFile)
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenDataFile), ui.onOpenDataFile)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), newSubjectItem, revealItem, openItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onNewSubjectClick asks for the name of a new subject
func (ui *RootUI) onNewSubjectClick() {
	nameEntry := widget.NewEntry()
	items := []*widget.FormItem{
		widget.NewFormItem(ui.localization.GetText(KeySubjectName), nameEntry),
	}

	dialog.ShowForm(
		ui.localization.GetText(KeyNewSubject),
		ui.localization.GetText(KeyAdd),
		ui.localization.GetText(KeyCancel),
		items,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			ui.addSubject(nameEntry.Text)
		},
		ui.window,
	)
}

// addSubject creates a subject through the tracker. Blank names are ignored.
func (ui *RootUI) addSubject(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	if _, err := ui.tracker.AddSubject(name); err != nil {
		log.Printf("Failed to add subject %q: %v", name, err)
		ui.showError(err)
	}
}

// onSubjectUpdate keeps the tabs in sync with the tracker
func (ui *RootUI) onSubjectUpdate(subject *model.Subject) {
	if subject == nil {
		return
	}

	if tab, exists := ui.subjectTabs[subject.ID]; exists {
		tab.Update(subject)
		return
	}

	item := ui.addTab(subject)
	ui.tabs.Select(item)
	ui.updateEmptyState()
}

// addTab appends a tab for subject and returns it
func (ui *RootUI) addTab(subject *model.Subject) *container.TabItem {
	tab := NewSubjectTab(subject, ui.tracker, ui.localization, ui.settings.GetDisplayDecimals)
	tab.SetErrorCallback(ui.showError)

	item := container.NewTabItem(subject.Name, tab.Content())
	ui.subjectTabs[subject.ID] = tab
	ui.tabs.Append(item)
	return item
}

// updateEmptyState shows the hint label while there are no subjects
func (ui *RootUI) updateEmptyState() {
	if len(ui.subjectTabs) == 0 {
		ui.tabs.Hide()
		ui.emptyLabel.Show()
		return
	}
	ui.emptyLabel.Hide()
	ui.tabs.Show()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.newSubjectBtn.SetText(ui.localization.GetText(KeyNewSubject))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoSubjects))

	for _, tab := range ui.subjectTabs {
		tab.RefreshTexts()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(dataFileChanged bool) {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()

		message := ui.localization.GetText(KeySettingsSaved)
		if dataFileChanged {
			message += "\n" + ui.localization.GetText(KeyRestartRequired)
		}
		dialog.ShowInformation(ui.localization.GetText(KeySettings), message, ui.window)
	})
}

// onRevealDataFile opens the data file location in the system file manager
func (ui *RootUI) onRevealDataFile() {
	if err := platform.OpenFileInManager(ui.settings.GetDataFile()); err != nil {
		log.Printf("Failed to reveal data file: %v", err)
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window)
	}
}

// onOpenDataFile opens the data file with the default application
func (ui *RootUI) onOpenDataFile() {
	if err := platform.OpenFileWithDefaultApp(ui.settings.GetDataFile()); err != nil {
		log.Printf("Failed to open data file: %v", err)
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window)
	}
}

// showError displays err. Storage failures offer to save the gradebook again,
// since the change is kept in memory.
func (ui *RootUI) showError(err error) {
	if !errors.Is(err, store.ErrWrite) {
		dialog.ShowError(err, ui.window)
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyErrorSaving),
		err.Error()+"\n\n"+ui.localization.GetText(KeyRetrySave),
		func(retry bool) {
			if retry {
				ui.retrySave()
			}
		},
		ui.window,
	)
}

// retrySave writes the whole gradebook again after a failed save
func (ui *RootUI) retrySave() {
	if err := ui.tracker.Save(); err != nil {
		log.Printf("Retry save failed: %v", err)
		ui.showError(err)
		return
	}
	log.Printf("Gradebook saved after retry")
}
