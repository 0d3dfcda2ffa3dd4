package validators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds request bodies; resource payloads are a handful of fields.
const maxBodyBytes = 1 << 20

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	_ = v.RegisterValidation("shopemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// Fields is an undecoded JSON object. Values are coerced one field at a time
// through Field descriptors so every failure names the offending key.
type Fields map[string]json.RawMessage

// DecodeFields reads the request body as a JSON object.
func DecodeFields(r *http.Request) (Fields, error) {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.KindValidation, pkgerrors.CodeInvalidBody, err, "Request body could not be read")
	}
	return ParseFields(body)
}

// ParseFields decodes raw bytes as a JSON object. Arrays, scalars, null and
// malformed JSON are rejected with INVALID_BODY.
func ParseFields(body []byte) (Fields, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, pkgerrors.Validation(pkgerrors.CodeInvalidBody, "Request body must be a JSON object")
	}

	var fields Fields
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.KindValidation, pkgerrors.CodeInvalidBody, err, "Request body must be valid JSON")
	}
	if fields == nil {
		fields = Fields{}
	}
	return fields, nil
}

// Present reports whether key appears in the body, even as null.
func (f Fields) Present(key string) bool {
	_, ok := f[key]
	return ok
}

// IsNull reports whether key is absent or JSON null.
func (f Fields) IsNull(key string) bool {
	raw, ok := f[key]
	return !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// blank reports absent, null, or a string that is empty once trimmed.
func (f Fields) blank(key string) bool {
	if f.IsNull(key) {
		return true
	}
	var s string
	if err := json.Unmarshal(f[key], &s); err == nil {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func checkRule(field Field, value any) error {
	if field.Rule == "" {
		return nil
	}
	err := validate.Var(value, field.Rule)
	if err == nil {
		return nil
	}
	if field.InvalidMessage != "" {
		return pkgerrors.Validation(field.Invalid, field.InvalidMessage)
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return pkgerrors.Validation(field.Invalid, fmt.Sprintf("%s %s", field.Key, validationMessage(errs[0])))
	}
	return pkgerrors.Validation(field.Invalid, fmt.Sprintf("%s is invalid", field.Key))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "shopemail":
		return "must be a valid email"
	}
	return "is invalid"
}
