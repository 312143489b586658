package validators

import (
	"context"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/food-catalog/internal/category"
	"github.com/MKhiriev/food-catalog/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of the
// candidate's fields. They match the JSON names of [models.ItemCandidate].
const (
	FieldName        = "name"
	FieldCategory    = "category"
	FieldCalorie     = "calorie"
	FieldDescription = "description"
	FieldImage       = "image"
)

var allItemFields = []string{FieldName, FieldCategory, FieldCalorie, FieldDescription, FieldImage}

// ItemValidator checks item candidates. Struct tags on
// [models.ItemCandidate] are evaluated by go-playground/validator; rules
// the tags cannot express (trimming, the category enum, calorie parsing)
// are applied explicitly.
type ItemValidator struct {
	validate *validator.Validate
}

func NewItemValidator() Validator {
	return newItemValidator()
}

func newItemValidator() *ItemValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &ItemValidator{validate: v}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemCandidate:
		return v.validateCandidate(ctx, value, fields...)
	case *models.ItemCandidate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCandidate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateCandidate(_ context.Context, c models.ItemCandidate, fields ...string) error {
	if len(fields) == 0 {
		fields = allItemFields
	}

	trimmed := trimCandidate(c)
	failed, err := v.tagFailures(trimmed)
	if err != nil {
		return err
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if failed[FieldName] {
				return reject(FieldName, "name is required")
			}
		case FieldCategory:
			if _, ok := category.ParseCanonical(trimmed.Category); !ok {
				return reject(FieldCategory, "category must be fruit or vegetable")
			}
		case FieldCalorie:
			if _, err := parseCalorie(trimmed.Calorie); err != nil {
				return err
			}
		case FieldDescription:
		case FieldImage:
			if trimmed.Image == "" {
				continue
			}
			if !hasHTTPScheme(trimmed.Image) || failed[FieldImage] {
				return reject(FieldImage, "image must be an absolute http or https URL")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// tagFailures evaluates the struct tags of the candidate and returns the
// JSON names of the fields that failed.
func (v *ItemValidator) tagFailures(c models.ItemCandidate) (map[string]bool, error) {
	err := v.validate.Struct(c)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, ErrUnsupportedType
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.Field()] = true
	}
	return failed, nil
}

// ToNewItem converts a candidate that has already passed
// [ItemValidator.Validate] into the normalized form the item store accepts:
// trimmed text, canonical category, parsed calorie and nil for absent
// optional fields.
func ToNewItem(c models.ItemCandidate) models.NewItem {
	trimmed := trimCandidate(c)
	kind, _ := category.ParseCanonical(trimmed.Category)
	calorie, _ := parseCalorie(trimmed.Calorie)

	return models.NewItem{
		Name:        trimmed.Name,
		Category:    kind,
		Calorie:     calorie,
		Description: optional(trimmed.Description),
		Image:       optional(trimmed.Image),
	}
}

func trimCandidate(c models.ItemCandidate) models.ItemCandidate {
	return models.ItemCandidate{
		Name:        strings.TrimSpace(c.Name),
		Category:    strings.TrimSpace(c.Category),
		Calorie:     models.CalorieInput(strings.TrimSpace(string(c.Calorie))),
		Description: strings.TrimSpace(c.Description),
		Image:       strings.TrimSpace(c.Image),
	}
}

// parseCalorie returns nil for empty input. Anything else must be a finite
// non-negative number.
func parseCalorie(in models.CalorieInput) (*float64, error) {
	if in == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(string(in), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, reject(FieldCalorie, "calorie must be a number")
	}
	if value < 0 {
		return nil, reject(FieldCalorie, "calorie must not be negative")
	}

	return &value, nil
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
