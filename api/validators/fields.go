package validators

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Field describes one body key: the codes reported when it is absent or
// malformed, and the validator rule applied to the coerced value.
type Field struct {
	Key            string
	Missing        pkgerrors.Code
	Invalid        pkgerrors.Code
	Rule           string
	MissingMessage string
	InvalidMessage string
	// NullOnly makes Require treat only absent and null as missing, leaving
	// "" to the format check. Used for amounts.
	NullOnly bool
}

func (f Field) missing() error {
	msg := f.MissingMessage
	if msg == "" {
		msg = fmt.Sprintf("%s is required", f.Key)
	}
	return pkgerrors.Validation(f.Missing, msg)
}

func (f Field) invalid() error {
	msg := f.InvalidMessage
	if msg == "" {
		msg = fmt.Sprintf("%s is invalid", f.Key)
	}
	return pkgerrors.Validation(f.Invalid, msg)
}

// Require runs the presence pass of a create: the first field that is
// absent, null or blank fails with its Missing code.
func (f Fields) Require(fields ...Field) error {
	for _, field := range fields {
		absent := f.blank(field.Key)
		if field.NullOnly {
			absent = f.IsNull(field.Key)
		}
		if absent {
			return field.missing()
		}
	}
	return nil
}

// RequiredString returns the trimmed value. Absent, null, non-string and
// blank values all fail with the Missing code.
func (f Fields) RequiredString(field Field) (string, error) {
	if f.blank(field.Key) {
		return "", field.missing()
	}
	var s string
	if err := json.Unmarshal(f[field.Key], &s); err != nil {
		return "", field.missing()
	}
	s = strings.TrimSpace(s)
	if err := checkRule(field, s); err != nil {
		return "", err
	}
	return s, nil
}

// OptionalString returns nil when the key is absent. A present value must be a
// non-blank string, otherwise the Invalid code is reported.
func (f Fields) OptionalString(field Field) (*string, error) {
	if !f.Present(field.Key) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(f[field.Key], &s); err != nil {
		return nil, field.invalid()
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, field.invalid()
	}
	if err := checkRule(field, s); err != nil {
		return nil, err
	}
	return &s, nil
}

// RequiredID parses an identifier given as a JSON integer or a numeric string.
func (f Fields) RequiredID(field Field) (int64, error) {
	if f.blank(field.Key) {
		return 0, field.missing()
	}
	d, err := f.number(field.Key)
	if err != nil || !d.IsInteger() || !d.Equal(decimal.NewFromInt(d.IntPart())) {
		return 0, field.invalid()
	}
	id := d.IntPart()
	if err := checkRule(field, id); err != nil {
		return 0, err
	}
	return id, nil
}

// RequiredMoney parses a JSON number or numeric string as a decimal amount.
func (f Fields) RequiredMoney(field Field) (float64, error) {
	if f.IsNull(field.Key) {
		return 0, field.missing()
	}
	return f.money(field)
}

// OptionalMoney is RequiredMoney for a key that may be absent.
func (f Fields) OptionalMoney(field Field) (*float64, error) {
	if !f.Present(field.Key) {
		return nil, nil
	}
	v, err := f.money(field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalCount parses a non-fractional amount such as inventory or ordersCount.
func (f Fields) OptionalCount(field Field) (*int, error) {
	if !f.Present(field.Key) {
		return nil, nil
	}
	d, err := f.number(field.Key)
	if err != nil || !d.IsInteger() || !d.Equal(decimal.NewFromInt(d.IntPart())) {
		return nil, field.invalid()
	}
	n := int(d.IntPart())
	if err := checkRule(field, n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (f Fields) money(field Field) (float64, error) {
	d, err := f.number(field.Key)
	if err != nil {
		return 0, field.invalid()
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, field.invalid()
	}
	if err := checkRule(field, v); err != nil {
		return 0, err
	}
	return v, nil
}

// number accepts 12, 12.5, "12" and " 12.5 ". Booleans, objects and
// non-numeric strings are rejected.
func (f Fields) number(key string) (decimal.Decimal, error) {
	raw, ok := f[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: absent", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return decimal.NewFromString(strings.TrimSpace(s))
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return decimal.Zero, fmt.Errorf("%s: not a number: %w", key, err)
	}
	return decimal.NewFromString(n.String())
}
