package schema

import (
	"fmt"
	"math"
	"net/mail"
)

const unbounded = math.MaxFloat64

// Integers are capped to what survives the float64-to-int conversion intact;
// anything larger is out of range for every integer field in the schema.
const maxSafeInt = math.MaxInt32

// payload wraps an untyped JSON object and collects field errors while the
// per-kind validators read typed values out of it. Readers never stop at the
// first failure; every violated constraint is recorded.
type payload struct {
	raw    map[string]any
	prefix string
	errs   []FieldError
}

func newPayload(raw map[string]any) *payload {
	return &payload{raw: raw}
}

// child creates a reader for a nested object. Its errors are merged back by
// the caller via adopt.
func (p *payload) child(raw map[string]any, prefix string) *payload {
	return &payload{raw: raw, prefix: p.path(prefix)}
}

func (p *payload) adopt(c *payload) {
	p.errs = append(p.errs, c.errs...)
}

func (p *payload) path(field string) string {
	if p.prefix == "" {
		return field
	}
	return p.prefix + "." + field
}

func (p *payload) addError(field, constraint, detail string) {
	p.errs = append(p.errs, FieldError{
		Field:      p.path(field),
		Constraint: constraint,
		Detail:     detail,
	})
}

// typeName names the JSON type of a decoded value for error details.
func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func boundDetail(min, max float64) string {
	switch {
	case max == unbounded:
		return fmt.Sprintf("must be >= %g", min)
	default:
		return fmt.Sprintf("must be between %g and %g", min, max)
	}
}

func (p *payload) requiredString(key string) string {
	v, ok := p.raw[key]
	if !ok || v == nil {
		p.addError(key, "required", "field is missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		p.addError(key, "type", "expected string, got "+typeName(v))
		return ""
	}
	if s == "" {
		p.addError(key, "required", "must not be empty")
	}
	return s
}

// optionalString falls back to def only when the key is absent or null; an
// explicit empty string is stored as supplied.
func (p *payload) optionalString(key, def string) string {
	v, ok := p.raw[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		p.addError(key, "type", "expected string, got "+typeName(v))
		return def
	}
	return s
}

func (p *payload) requiredEmail(key string) string {
	s := p.requiredString(key)
	if s == "" {
		return s
	}
	if _, err := mail.ParseAddress(s); err != nil {
		p.addError(key, "email", "not a valid email address")
	}
	return s
}

func (p *payload) requiredNumber(key string, min, max float64) float64 {
	v, ok := p.raw[key]
	if !ok || v == nil {
		p.addError(key, "required", "field is missing")
		return 0
	}
	n, ok := v.(float64)
	if !ok {
		p.addError(key, "type", "expected number, got "+typeName(v))
		return 0
	}
	if n < min || n > max {
		p.addError(key, "range", boundDetail(min, max))
	}
	return n
}

func (p *payload) optionalNumber(key string, min, max, def float64) float64 {
	v, ok := p.raw[key]
	if !ok || v == nil {
		return def
	}
	n, ok := v.(float64)
	if !ok {
		p.addError(key, "type", "expected number, got "+typeName(v))
		return def
	}
	if n < min || n > max {
		p.addError(key, "range", boundDetail(min, max))
	}
	return n
}

func (p *payload) requiredInt(key string, min, max float64) int {
	v, ok := p.raw[key]
	if !ok || v == nil {
		p.addError(key, "required", "field is missing")
		return 0
	}
	n, ok := v.(float64)
	if !ok || n != math.Trunc(n) {
		p.addError(key, "type", "expected integer, got "+typeName(v))
		return 0
	}
	if n < min || n > max || n < -maxSafeInt || n > maxSafeInt {
		p.addError(key, "range", boundDetail(min, max))
		return 0
	}
	return int(n)
}

func (p *payload) optionalInt(key string, min, max float64) *int {
	v, ok := p.raw[key]
	if !ok || v == nil {
		return nil
	}
	n, ok := v.(float64)
	if !ok || n != math.Trunc(n) {
		p.addError(key, "type", "expected integer, got "+typeName(v))
		return nil
	}
	if n < min || n > max || n < -maxSafeInt || n > maxSafeInt {
		p.addError(key, "range", boundDetail(min, max))
		return nil
	}
	i := int(n)
	return &i
}

func (p *payload) optionalBool(key string, def bool) bool {
	v, ok := p.raw[key]
	if !ok || v == nil {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		p.addError(key, "type", "expected boolean, got "+typeName(v))
		return def
	}
	return b
}

func (p *payload) requiredObject(key string) (map[string]any, bool) {
	v, ok := p.raw[key]
	if !ok || v == nil {
		p.addError(key, "required", "field is missing")
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		p.addError(key, "type", "expected object, got "+typeName(v))
		return nil, false
	}
	return m, true
}

func (p *payload) requiredArray(key string) ([]any, bool) {
	v, ok := p.raw[key]
	if !ok || v == nil {
		p.addError(key, "required", "field is missing")
		return nil, false
	}
	a, ok := v.([]any)
	if !ok {
		p.addError(key, "type", "expected array, got "+typeName(v))
		return nil, false
	}
	return a, true
}
