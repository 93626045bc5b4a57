package gradebook

import (
	"errors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	notBlankTag  = "notblank"
	notBlankText = "{0} is required"

	utf8Tag  = "utf8"
	utf8Text = "{0} must be valid UTF-8 text"
)

// Validator checks commands against their struct tags
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator instantiates the validator with English messages.
func NewValidator() *Validator {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, validators.NotBlank)
	registerTranslation(validate, translator, notBlankTag, notBlankText)

	_ = validate.RegisterValidation(utf8Tag, validUTF8)
	registerTranslation(validate, translator, utf8Tag, utf8Text)

	return &Validator{validate: validate, translator: translator}
}

// Check validates cmd and returns a *ValidationError listing every bad field
func (v *Validator) Check(cmd Command) error {
	err := v.validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field: fe.Field(),
			Error: fe.Translate(v.translator),
		})
	}
	return &ValidationError{Fields: fields}
}

// registerTranslation registers a message for a custom validation tag.
func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// validUTF8 rejects strings that would not survive a JSON round trip.
func validUTF8(fl validator.FieldLevel) bool {
	return utf8.ValidString(fl.Field().String())
}
