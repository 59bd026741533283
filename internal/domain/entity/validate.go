package entity

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = time.RFC3339
)

var (
	ErrDuplicateField   = errors.New("duplicate field name")
	ErrOptionsMismatch  = errors.New("options must be set exactly for select and multi-select fields")
	ErrUnknownReference = errors.New("reference to unknown field")
)

// Validate checks the structural invariants of a record type.
func Validate(c Config) error {
	seen := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if seen[f.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true

		if f.Type.HasOptions() != (len(f.Options) > 0) {
			return fmt.Errorf("%w: %s", ErrOptionsMismatch, f.Name)
		}
	}

	if !seen[c.TitleField] {
		return fmt.Errorf("%w: titleField %q", ErrUnknownReference, c.TitleField)
	}
	if c.DescriptionField != "" && !seen[c.DescriptionField] {
		return fmt.Errorf("%w: descriptionField %q", ErrUnknownReference, c.DescriptionField)
	}
	switch c.DefaultSort.Field {
	case "created_at", "updated_at":
	default:
		if !seen[c.DefaultSort.Field] {
			return fmt.Errorf("%w: defaultSort %q", ErrUnknownReference, c.DefaultSort.Field)
		}
	}
	if c.DefaultSort.Direction != SortAsc && c.DefaultSort.Direction != SortDesc {
		return fmt.Errorf("invalid sort direction %q", c.DefaultSort.Direction)
	}
	return nil
}

// FieldTypeToValidateTag returns the validator tag applied to a present,
// already-coerced field value. Presence itself is checked separately so that
// zero numbers and false booleans stay valid.
func FieldTypeToValidateTag(f Field) string {
	switch f.Type {
	case FieldDate:
		return "datetime=" + dateLayout
	case FieldDateTime:
		return "datetime=" + dateTimeLayout
	case FieldSelect:
		if len(f.Options) == 0 {
			return "oneof=draft"
		}
		return "oneof=" + strings.Join(f.Options, " ")
	case FieldMultiSelect:
		if len(f.Options) == 0 {
			return "dive,min=1"
		}
		return "dive,oneof=" + strings.Join(f.Options, " ")
	case FieldTags:
		return "dive,min=1"
	case FieldURL:
		return "url"
	case FieldEmail:
		return "email"
	default:
		return ""
	}
}

// FieldErrors maps field names to a human readable reason.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for n := range e {
		names = append(names, n)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, n+": "+e[n])
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

// Record is a form submission with values coerced to their Go types:
// string, float64, decimal.Decimal, time.Time, bool or []string.
type Record map[string]any

var validate = validator.New()

// ParseRecord validates a decoded JSON body against the form fields of c and
// coerces every present value. Absent fields take their declared default.
// When partial is set, missing fields are left alone (updates) but required
// fields still cannot be cleared.
func ParseRecord(c Config, input map[string]any, partial bool) (Record, error) {
	errs := FieldErrors{}
	out := Record{}

	known := make(map[string]bool)
	for _, f := range c.FormFields() {
		known[f.Name] = true

		raw, present := input[f.Name]
		if !present && !partial && f.Default != nil {
			raw, present = f.Default, true
		}
		if !present || isEmpty(raw) {
			switch {
			case f.Required && (present || !partial):
				errs[f.Name] = "is required"
			case present:
				out[f.Name] = nil
			}
			continue
		}

		v, err := coerce(f, raw)
		if err != nil {
			errs[f.Name] = err.Error()
			continue
		}

		tag := FieldTypeToValidateTag(f)
		if tag != "" {
			check := v
			if _, isTime := v.(time.Time); isTime {
				// validator's datetime rule works on the raw string
				check = raw
			}
			if err := validate.Var(check, tag); err != nil {
				errs[f.Name] = describe(f, err)
				continue
			}
		}
		out[f.Name] = v
	}

	for k := range input {
		if !known[k] {
			errs[k] = "is not a form field"
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// ValidateRecord checks a complete form submission without keeping the
// coerced values.
func ValidateRecord(c Config, input map[string]any) error {
	_, err := ParseRecord(c, input, false)
	return err
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	default:
		return false
	}
}

func coerce(f Field, raw any) (any, error) {
	switch f.Type {
	case FieldNumber:
		switch x := raw.(type) {
		case float64:
			return x, nil
		case string:
			n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
			if err != nil {
				return nil, errors.New("must be a number")
			}
			return n, nil
		}
		return nil, errors.New("must be a number")

	case FieldCurrency:
		var d decimal.Decimal
		var err error
		switch x := raw.(type) {
		case float64:
			d = decimal.NewFromFloat(x)
		case string:
			d, err = decimal.NewFromString(strings.TrimSpace(x))
		default:
			err = errors.New("not a number")
		}
		if err != nil {
			return nil, errors.New("must be a number")
		}
		return d.Round(2), nil

	case FieldBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, errors.New("must be a boolean")
		}
		return b, nil

	case FieldDate, FieldDateTime:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("must be a string")
		}
		layout := dateLayout
		if f.Type == FieldDateTime {
			layout = dateTimeLayout
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, fmt.Errorf("must match %s", layout)
		}
		return t, nil

	case FieldMultiSelect, FieldTags:
		items, ok := raw.([]any)
		if !ok {
			if ss, ok := raw.([]string); ok {
				return ss, nil
			}
			return nil, errors.New("must be a list of strings")
		}
		out := make([]string, 0, len(items))
		for _, it := range items {
			s, ok := it.(string)
			if !ok {
				return nil, errors.New("must be a list of strings")
			}
			out = append(out, s)
		}
		return out, nil

	default:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("must be a string")
		}
		return s, nil
	}
}

func describe(f Field, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "is invalid"
	}
	switch verrs[0].Tag() {
	case "oneof":
		return "must be one of " + strings.Join(f.Options, ", ")
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email"
	case "datetime":
		return "has an invalid date format"
	case "min":
		return "must not contain empty values"
	default:
		return "is invalid"
	}
}
