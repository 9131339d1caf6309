package schema

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10" // Struct field validation

	"finance_tracker/internal/domain"
)

// FieldErrors maps a form field name to its validation messages
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

// digits matches whole non-negative numbers only, the shape form inputs arrive in
var digits = regexp.MustCompile(`^\d+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the json field name instead of the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// message converts a single validator error into a human-readable message
func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Required"
	case "min":
		return "Must be at least " + err.Param() + " characters."
	case "max":
		return "Must be at most " + err.Param() + " characters."
	case "oneof":
		return "Invalid category."
	}
	return "Invalid value."
}

// structErrors flattens validator errors into a field-scoped error map
func structErrors(err error) FieldErrors {
	fe := FieldErrors{}
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			fe.add(e.Field(), message(e))
		}
		return fe
	}
	fe.add("form", "Invalid input.")
	return fe
}

// parseAmount coerces a digit-only string into a numeric balance
func parseAmount(field, value string, fe FieldErrors) float64 {
	if !digits.MatchString(value) {
		fe.add(field, "Must be a whole number.")
		return 0
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		fe.add(field, "Must be a whole number.")
		return 0
	}
	return amount
}

// parseDay coerces an optional digit-only string into a day of month in [0,31]
func parseDay(field, value string, fe FieldErrors) *int {
	if value == "" {
		return nil
	}
	if !digits.MatchString(value) {
		fe.add(field, "Must be a whole number.")
		return nil
	}
	day, err := strconv.Atoi(value)
	if err != nil || day < 0 || day > 31 {
		fe.add(field, "Must be between 0 and 31.")
		return nil
	}
	return &day
}

// requireForCredit marks a day field Required when the category is CREDIT.
// A zero day counts as missing. Each field is checked independently so both
// bill and due can be reported at once.
func requireForCredit(category, field string, day *int, fe FieldErrors) {
	if category != string(domain.CategoryCredit) {
		return
	}
	if day == nil || *day == 0 {
		fe.add(field, "Required")
	}
}

func parseID(field, value string, fe FieldErrors) uint {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		fe.add(field, "Invalid identifier.")
		return 0
	}
	return uint(id)
}

// CreateInput is the raw form payload for adding an account
type CreateInput struct {
	Title    string `form:"title" json:"title" validate:"required,min=2,max=50"`
	Category string `form:"category" json:"category" validate:"required,oneof=CASH CREDIT"`
	Balance  string `form:"balance" json:"balance" validate:"required"`
	Bill     string `form:"bill" json:"bill"`
	Due      string `form:"due" json:"due"`
}

// CreateData holds the parsed fields of a valid create payload
type CreateData struct {
	Title    string
	Category domain.AccountCategory
	Balance  float64
	Bill     *int
	Due      *int
}

// ValidateCreate checks a create payload and coerces its fields
func ValidateCreate(in CreateInput) (*CreateData, FieldErrors) {
	if err := validate.Struct(in); err != nil {
		return nil, structErrors(err)
	}
	fe := FieldErrors{}
	balance := parseAmount("balance", in.Balance, fe)
	bill := parseDay("bill", in.Bill, fe)
	due := parseDay("due", in.Due, fe)
	requireForCredit(in.Category, "bill", bill, fe)
	requireForCredit(in.Category, "due", due, fe)
	if len(fe) > 0 {
		return nil, fe
	}
	return &CreateData{
		Title:    in.Title,
		Category: domain.AccountCategory(in.Category),
		Balance:  balance,
		Bill:     bill,
		Due:      due,
	}, nil
}

// UpdateInput is the raw form payload for editing an account.
// Balance is not accepted: it is immutable after creation.
type UpdateInput struct {
	ID       string `form:"id" json:"id" validate:"required"`
	Title    string `form:"title" json:"title" validate:"required,min=2,max=50"`
	Category string `form:"category" json:"category" validate:"required,oneof=CASH CREDIT"`
	Bill     string `form:"bill" json:"bill"`
	Due      string `form:"due" json:"due"`
}

// UpdateData holds the parsed fields of a valid update payload
type UpdateData struct {
	ID       uint
	Title    string
	Category domain.AccountCategory
	Bill     *int
	Due      *int
}

// ValidateUpdate checks an update payload and coerces its fields
func ValidateUpdate(in UpdateInput) (*UpdateData, FieldErrors) {
	if err := validate.Struct(in); err != nil {
		return nil, structErrors(err)
	}
	fe := FieldErrors{}
	id := parseID("id", in.ID, fe)
	bill := parseDay("bill", in.Bill, fe)
	due := parseDay("due", in.Due, fe)
	requireForCredit(in.Category, "bill", bill, fe)
	requireForCredit(in.Category, "due", due, fe)
	if len(fe) > 0 {
		return nil, fe
	}
	return &UpdateData{
		ID:       id,
		Title:    in.Title,
		Category: domain.AccountCategory(in.Category),
		Bill:     bill,
		Due:      due,
	}, nil
}

// DeleteInput is the raw form payload for deleting an account
type DeleteInput struct {
	ID string `form:"id" json:"id" validate:"required"`
}

// DeleteData holds the parsed identifier of a valid delete payload
type DeleteData struct {
	ID uint
}

// ValidateDelete checks a delete payload
func ValidateDelete(in DeleteInput) (*DeleteData, FieldErrors) {
	if err := validate.Struct(in); err != nil {
		return nil, structErrors(err)
	}
	fe := FieldErrors{}
	id := parseID("id", in.ID, fe)
	if len(fe) > 0 {
		return nil, fe
	}
	return &DeleteData{ID: id}, nil
}
