package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describe una violación de una regla sobre un campo
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrors agrupa todas las violaciones encontradas al construir un registro
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(ve))
	for _, fe := range ve {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, "; ")
}

// Has indica si el campo tiene al menos un error
func (ve ValidationErrors) Has(field string) bool {
	for _, fe := range ve {
		if fe.Field == field {
			return true
		}
	}
	return false
}

var messageTemplates = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email address",
}

var messageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"gt":    "%s must be greater than %s",
	"min":   "%s must contain at least %s item(s)",
}

// checker acumula errores de campo; cada regla se evalúa con validator.Var
type checker struct {
	prefix string
	errs   ValidationErrors
}

func (c *checker) check(field string, value interface{}, tag, param string) {
	rule := tag
	if param != "" {
		rule = tag + "=" + param
	}
	if err := validate.Var(value, rule); err != nil {
		c.add(field, tag, param)
	}
}

func (c *checker) add(field, tag, param string) {
	name := c.prefix + field
	msg := fmt.Sprintf("%s failed %s validation", name, tag)
	if tmpl, ok := messageTemplates[tag]; ok {
		msg = fmt.Sprintf(tmpl, name)
	} else if tmpl, ok := messageWithParam[tag]; ok {
		msg = fmt.Sprintf(tmpl, name, param)
	}
	c.errs = append(c.errs, FieldError{Field: name, Tag: tag, Message: msg})
}

func (c *checker) required(field, value string) {
	c.check(field, value, "required", "")
}

func (c *checker) email(field, value string) {
	if value == "" {
		c.required(field, value)
		return
	}
	c.check(field, value, "email", "")
}

func (c *checker) oneOf(field, value string, allowed []string) {
	c.check(field, value, "oneof", strings.Join(allowed, " "))
}

func (c *checker) gte(field string, value float64, bound string) {
	c.check(field, value, "gte", bound)
}

func (c *checker) gt(field string, value float64, bound string) {
	c.check(field, value, "gt", bound)
}

// requiredNumber marca el campo como ausente y devuelve cero si no vino
func (c *checker) requiredNumber(field string, value *float64) float64 {
	if value == nil {
		c.add(field, "required", "")
		return 0
	}
	return *value
}

// nested incorpora los errores de un sub-registro bajo el prefijo indicado
func (c *checker) nested(prefix string, err error) {
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		return
	}
	for _, fe := range ve {
		full := c.prefix + prefix + "." + fe.Field
		fe.Message = full + strings.TrimPrefix(fe.Message, fe.Field)
		fe.Field = full
		c.errs = append(c.errs, fe)
	}
}

func (c *checker) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
