package parser

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/mph-llm-experiments/alearn/internal/model"
)

var (
	requiredWithoutTag  = "required_without"
	requiredWithoutText = "{0} is required when {1} is not set"
)

// Validator checks activity records before they reach the rest of the program.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator builds a Validator that reports errors in English using the
// yaml field names of model.Activity.
func NewValidator() *Validator {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report yaml tag names instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterTranslation(
		requiredWithoutTag, translator,
		func(t ut.Translator) error { return t.Add(requiredWithoutTag, requiredWithoutText, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(requiredWithoutTag, fe.Field(), yamlName(fe.Param()))
			return s
		},
	)

	return &Validator{validate: validate, translator: translator}
}

// Activity validates a single activity record.
func (v *Validator) Activity(a model.Activity) error {
	err := v.validate.Struct(a)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(v.translator))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// yamlName maps a Go field name used as a validator param to its yaml key.
func yamlName(field string) string {
	f, ok := reflect.TypeOf(model.Activity{}).FieldByName(field)
	if !ok {
		return field
	}
	return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
}
