package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyNewSubject        = "new_subject"
	KeySubjectName       = "subject_name"
	KeyEvaluationName    = "evaluation_name"
	KeyAdd               = "add"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDataFile          = "data_file"
	KeyDisplayDecimals   = "display_decimals"
	KeyRevealDataFile    = "reveal_data_file"
	KeyOpenDataFile      = "open_data_file"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyStatusExempt      = "status_exempt"
	KeyStatusAtRisk      = "status_at_risk"
	KeyStatusInProgress  = "status_in_progress"
	KeyAverage           = "average"
	KeyRemaining         = "remaining"
	KeyRetrySave         = "retry_save"
	KeyInvalidGrade      = "invalid_grade"
	KeyInvalidWeight     = "invalid_weight"
	KeyNoSubjects        = "no_subjects"
	KeyErrorSaving       = "error_saving"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyInvalidDecimals   = "invalid_decimals"
	KeyInterfaceSettings = "interface_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "es",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "es"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Spanish
	if texts, exists := l.texts["es"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"es": "Español",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["es"] = map[string]string{
		KeyAppTitle:          "Calculadora Universitaria Pro",
		KeyNewSubject:        "Nueva Asignatura",
		KeySubjectName:       "Nombre",
		KeyEvaluationName:    "Nombre evaluación",
		KeyAdd:               "Agregar",
		KeySettings:          "Configuración",
		KeyFile:              "Archivo",
		KeyLanguage:          "Idioma",
		KeyDataFile:          "Archivo de datos",
		KeyDisplayDecimals:   "Decimales a mostrar",
		KeyRevealDataFile:    "Mostrar archivo de datos",
		KeyOpenDataFile:      "Abrir archivo de datos",
		KeySave:              "Guardar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "¡Configuración guardada!",
		KeyRestartRequired:   "El nuevo archivo de datos se usará al reiniciar.",
		KeyStatusExempt:      "Eximido",
		KeyStatusAtRisk:      "En riesgo",
		KeyStatusInProgress:  "En progreso",
		KeyAverage:           "Promedio",
		KeyRemaining:         "Pendiente",
		KeyRetrySave:         "¿Reintentar el guardado?",
		KeyInvalidGrade:      "La nota debe ser un número",
		KeyInvalidWeight:     "La ponderación debe ser un número entero",
		KeyNoSubjects:        "Agrega una asignatura para comenzar",
		KeyErrorSaving:       "No se pudieron guardar las notas",
		KeyErrorOpeningFile:  "No se pudo abrir el archivo",
		KeyInvalidDecimals:   "Los decimales deben ser un número entero",
		KeyInterfaceSettings: "Interfaz",
	}

	l.texts["en"] = map[string]string{
		KeyAppTitle:          "University Grade Calculator",
		KeyNewSubject:        "New Subject",
		KeySubjectName:       "Name",
		KeyEvaluationName:    "Evaluation name",
		KeyAdd:               "Add",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDataFile:          "Data file",
		KeyDisplayDecimals:   "Displayed decimals",
		KeyRevealDataFile:    "Reveal data file",
		KeyOpenDataFile:      "Open data file",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "The new data file will be used after a restart.",
		KeyStatusExempt:      "Exempt",
		KeyStatusAtRisk:      "At risk",
		KeyStatusInProgress:  "In progress",
		KeyAverage:           "Average",
		KeyRemaining:         "Remaining",
		KeyRetrySave:         "Retry saving?",
		KeyInvalidGrade:      "Grade must be a number",
		KeyInvalidWeight:     "Weight must be a whole number",
		KeyNoSubjects:        "Add a subject to get started",
		KeyErrorSaving:       "Grades could not be saved",
		KeyErrorOpeningFile:  "Error opening file",
		KeyInvalidDecimals:   "Decimals must be a whole number",
		KeyInterfaceSettings: "Interface",
	}
}
