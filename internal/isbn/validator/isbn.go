package validator

import (
	"errors"
	"fmt"
	"reflect"

	isbnerrors "isbnsplit/internal/isbn/errors"
	"isbnsplit/pkg/logger"
	"isbnsplit/pkg/model"

	"github.com/go-playground/validator/v10"
)

const tagISBNDigits = "isbndigits"

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

func (v ValidationErrors) Unwrap() error {
	return isbnerrors.ErrInvalidCharacter
}

func (v ValidationErrors) Details() map[string]any {
	fields := make(map[string]any, len(v))
	for _, e := range v {
		fields[e.Field] = e.Message
	}
	return fields
}

// fieldLabels maps Decomposition field names to their display labels.
var fieldLabels = map[string]string{
	"GSIPrefix":       model.GSIPrefix.Label(),
	"GroupIdentifier": model.GroupIdentifier.Label(),
	"PublisherCode":   model.PublisherCode.Label(),
	"ItemNumber":      model.ItemNumber.Label(),
	"CheckDigit":      model.CheckDigit.Label(),
}

type ISBNValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewISBNValidator(log *logger.Logger) *ISBNValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation(tagISBNDigits, isASCIIDigits); err != nil {
		log.Fatal("Failed to register ISBN validation", "tag", tagISBNDigits, "error", err)
	}

	return &ISBNValidator{
		validate: v,
		log:      log,
	}
}

// Validate checks every group for presence and ASCII digits. All five
// groups are inspected before returning; the result wraps
// isbnerrors.ErrInvalidCharacter when any group fails.
func (v *ISBNValidator) Validate(groups model.GroupSet) error {
	d := groups.Decomposition()

	if err := v.validate.Struct(d); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs, groups)
		}
		return err
	}

	return nil
}

func (v *ISBNValidator) ValidateRequest(req *model.DecomposeRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			out := make(ValidationErrors, 0, len(validationErrs))
			for _, fe := range validationErrs {
				out = append(out, ValidationError{
					Field:   "isbn",
					Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
				})
			}
			return out
		}
		return err
	}
	return nil
}

func (v *ISBNValidator) translateValidationErrors(errs validator.ValidationErrors, groups model.GroupSet) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		label := fieldLabels[err.StructField()]

		msg := "must contain only digits 0-9"
		if err.Tag() == "required" {
			msg = "is missing"
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   label,
			Message: msg,
		})
	}

	v.log.Debug("ISBN groups rejected",
		"groups_found", groups.Present(),
		"failed_groups", len(validationErrors),
	)

	return validationErrors
}

func isASCIIDigits(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	s := field.String()
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
