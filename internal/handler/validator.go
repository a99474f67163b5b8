package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator that reports fields by their JSON names
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &Validator{validate: v}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Messages shown to the client, keyed by "<Request>.<json field>"
var validationMessages = map[string]string{
	"OnboardingRequest.business_name":      "Business name is required",
	"OnboardingRequest.email":              "Valid email is required",
	"OnboardingRequest.generated_username": "Username too short",
	"OnboardingRequest.generated_password": "Password too short",
	"LoginRequest.username":                "Username cannot be empty",
	"LoginRequest.password":                "Password cannot be empty",
	"CreateEmployeeRequest.name":           "Employee name is required",
	"CreateEmployeeRequest.salary":         "Salary cannot be negative",
	"UpdateEmployeePaymentRequest.paid":    "Paid status is required",
	"UpdateTaskRequest.done":               "Done status is required",
	"CreateEventRequest.title":             "Event title is required",
	"CreateEventRequest.start_date":        "Start and end dates are required",
	"CreateEventRequest.end_date":          "Start and end dates are required",
}

// bindAndValidate decodes the body into req and validates it. The
// returned string is the client-facing reason when err is not nil.
func bindAndValidate(c echo.Context, req interface{}) (string, error) {
	if err := c.Bind(req); err != nil {
		return "Invalid request data", err
	}
	if err := c.Validate(req); err != nil {
		return validationMessage(err), err
	}
	return "", nil
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request data"
	}
	fe := fieldErrs[0]
	if msg, ok := validationMessages[fe.Namespace()]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}
