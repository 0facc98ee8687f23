// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/nasa-explorer/internal/models"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed rule on a query field.
type FieldError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the query parameter name that failed validation.
func (e *FieldError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *FieldError) Tag() string {
	return e.tag
}

// Param returns the rule parameter, such as "0" for gte=0. Empty for rules
// without one.
func (e *FieldError) Param() string {
	return e.param
}

// Value returns the rejected value.
func (e *FieldError) Value() interface{} {
	return e.value
}

// Error returns the human-readable message.
func (e *FieldError) Error() string {
	return e.message
}

// RequestValidationError collects every failed rule of one query struct.
type RequestValidationError struct {
	errors []FieldError
}

// Errors returns the individual field errors in struct order.
func (ve *RequestValidationError) Errors() []FieldError {
	return ve.errors
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// ToError converts the first failure into the service error type.
// Callers see exactly one message per request.
func (ve *RequestValidationError) ToError() *models.Error {
	if len(ve.errors) == 0 {
		return models.NewValidationError(models.CodeValidation, "Validation failed")
	}
	first := ve.errors[0]
	return &models.Error{
		Kind:       models.KindValidation,
		Code:       errorCode(first.field, first.tag),
		Message:    first.message,
		StatusCode: http.StatusBadRequest,
		Err:        ve,
	}
}

// GetValidator returns the singleton validator instance with the NASA tags
// registered. This function is thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		mustRegister("nasadate", func(fl validator.FieldLevel) bool {
			return IsValidDate(fl.Field().String())
		})
		mustRegister("rover", func(fl validator.FieldLevel) bool {
			_, err := NormalizeRover(fl.Field().String())
			return err == nil
		})
		mustRegister("camera", func(fl validator.FieldLevel) bool {
			return IsValidCamera(fl.Field().String())
		})
		mustRegister("year", func(fl validator.FieldLevel) bool {
			return IsValidYear(fl.Field().String())
		})
		mustRegister("notblank", func(fl validator.FieldLevel) bool {
			return !IsBlank(fl.Field().String())
		})
	})

	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// ValidateStruct validates a query struct using the singleton validator.
// Returns nil if validation passes.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []FieldError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	fieldErrors := make([]FieldError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = FieldError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// Struct validates s and returns a *models.Error, or nil.
func Struct(s interface{}) error {
	if ve := ValidateStruct(s); ve != nil {
		return ve.ToError()
	}
	return nil
}

// fieldMessages overrides the template for a specific "field.tag" pair.
var fieldMessages = map[string]string{
	"start_date.required": models.MsgRequiredDates,
	"end_date.required":   models.MsgRequiredDates,
	"rover.required":      MsgInvalidRover,
	"rover.rover":         MsgInvalidRover,
	"sol.gte":             "Sol must be a non-negative integer",
	"q.required":          "Search query is required",
	"q.notblank":          "Search query is required",
	"page.gte":            "Page must be a positive integer",
	"page_size.gte":       "Page size must be a positive integer",
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"notblank": "%s must not be blank",
	"nasadate": models.MsgInvalidDateFormat,
	"camera":   "Invalid camera. Must be one of: " + strings.Join(Cameras, ", "),
	"year":     "%s must be a four-digit year",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if msg, ok := fieldMessages[field+"."+tag]; ok {
		return msg
	}

	if template, ok := errorMessageTemplates[tag]; ok {
		if strings.Contains(template, "%s") {
			return fmt.Sprintf(template, field)
		}
		return template
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		if tag == "oneof" {
			param = strings.ReplaceAll(param, " ", ", ")
		}
		return fmt.Sprintf(template, field, param)
	}

	return fmt.Sprintf("%s failed %s validation", field, tag)
}

// errorCode picks the machine-readable code for a failed rule.
func errorCode(field, tag string) string {
	switch {
	case tag == "nasadate":
		return models.CodeInvalidDateFormat
	case tag == "required" && (field == "start_date" || field == "end_date"):
		return models.CodeRequiredParameters
	default:
		return models.CodeValidation
	}
}
