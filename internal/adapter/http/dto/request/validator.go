package request

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks create payloads against their `validate` tags. When strict
// is off every payload passes, keeping the permissive baseline.
type Validator struct {
	strict   bool
	validate *validator.Validate
}

func NewValidator(strict bool) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{strict: strict, validate: v}
}

func (v *Validator) Strict() bool {
	return v != nil && v.strict
}

// Validate returns nil or an error listing the offending fields by their
// JSON name.
func (v *Validator) Validate(payload interface{}) error {
	if !v.Strict() {
		return nil
	}
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
