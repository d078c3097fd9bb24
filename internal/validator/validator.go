package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/checkmygrade/checkmygrade/internal/response"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator checks request structs against their `validate` tags and
// translates failures into human-readable field messages.
type Validator struct {
	validate *govalidator.Validate
	trans    ut.Translator
}

// New creates a Validator with English translations registered.
func New() *Validator {
	v := govalidator.New()

	// Use JSON tag names for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(v, trans)

	return &Validator{validate: v, trans: trans}
}

// Struct validates dst. It returns nil on success or a VALIDATION_ERROR
// carrying a field name → message map on failure.
func (v *Validator) Struct(dst any) error {
	err := v.validate.Struct(dst)
	if err == nil {
		return nil
	}

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(v.trans)
		}
		return response.FieldErrors(fields)
	}

	return response.WrapError(response.ErrValidation, err, "validate input")
}
