package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	esTranslations "github.com/go-playground/validator/v10/translations/es"
)

type CustomValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// NewValidator returns a validator whose error messages are written in
// locale ("es" or "en"; anything else falls back to "es"). Field names in
// messages are the JSON names of the request fields.
func NewValidator(locale string) *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	enLocale := en.New()
	esLocale := es.New()
	uni := ut.New(esLocale, esLocale, enLocale)

	var trans ut.Translator
	if locale == "en" {
		trans, _ = uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(v, trans)
	} else {
		trans, _ = uni.GetTranslator("es")
		_ = esTranslations.RegisterDefaultTranslations(v, trans)
	}

	return &CustomValidator{
		validator:  v,
		translator: trans,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps each failing field to a translated message.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs[fieldPath(e)] = e.Translate(cv.translator)
		}
	}

	return errs
}

// fieldPath drops the struct name prefix so nested fields read like
// "roles[0]" instead of "CreateUserRequest.roles[0]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}
