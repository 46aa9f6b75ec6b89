package req

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"github.com/xy-planning-network/rest"
)

// validator checks parsed payloads against their "validate" struct tags.
//
// Beyond the rules v10 ships with, these are registered:
//
//	enum:      the field, or each element of a slice field, is a valid rest.Enumerable
//	mediatype: the field is a media type a resource can be represented in
type validator struct {
	v *v10.Validate
}

func newValidator() validator {
	v := v10.New()
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("enum", validateEnumerable)
	_ = v.RegisterValidation("mediatype", validateMediaType)

	return validator{v}
}

// fieldName reports a field by its JSON name, falling back to its query param name.
func fieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "schema"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return ""
}

// validate returns ValidationErrors listing every field of structPtr breaking its rules.
func (v validator) validate(structPtr any) error {
	err := v.v.Struct(structPtr)
	if err == nil {
		return nil
	}

	var fieldErrs v10.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field: fieldPath(fe.Namespace()),
			Got:   fe.Value(),
			Rule:  ruleOf(fe),
		})
	}

	return errs
}

// fieldPath drops the struct's own name from a namespace like "createBody.meta.title".
func fieldPath(ns string) string {
	if _, path, ok := strings.Cut(ns, "."); ok {
		return path
	}

	return ns
}

// ruleOf formats the broken rule like "gt=10; int64".
func ruleOf(fe v10.FieldError) string {
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return rule + "; " + fe.Type().String()
}

func validateEnumerable(fl v10.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return validEnums(field)
	}

	items := make([]reflect.Value, field.Len())
	for i := range items {
		items[i] = field.Index(i)
	}

	return validEnums(items...)
}

// validEnums reports whether there is at least one item and each is a valid rest.Enumerable.
func validEnums(items ...reflect.Value) bool {
	if len(items) == 0 {
		return false
	}

	for _, item := range items {
		if !item.CanInterface() {
			return false
		}

		enum, ok := item.Interface().(rest.Enumerable)
		if !ok || enum.Valid() != nil {
			return false
		}
	}

	return true
}

func validateMediaType(fl v10.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return slices.Contains(rest.AcceptableTypes(), field.String())
}
