package validators

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/pagination"
)

// QueryID reads an integer identifier from the query string. An empty value
// reports present=false; anything that does not parse as an integer fails
// with code.
func QueryID(r *http.Request, key string, code pkgerrors.Code, message string) (id int64, present bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, pkgerrors.Validation(code, message)
	}
	return id, true, nil
}

// RequireQueryID is QueryID for endpoints where the identifier is mandatory;
// absence fails with the same code as a malformed value.
func RequireQueryID(r *http.Request, key string, code pkgerrors.Code, message string) (int64, error) {
	id, present, err := QueryID(r, key, code, message)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, pkgerrors.Validation(code, message)
	}
	return id, nil
}

// QueryFloat is lenient: absent or malformed values, NaN and infinities
// yield nil so the filter is skipped rather than rejected.
func QueryFloat(r *http.Request, key string) *float64 {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// QueryString returns the raw value; an empty string means the filter is off.
func QueryString(r *http.Request, key string) string {
	return r.URL.Query().Get(key)
}

func QueryPage(r *http.Request) pagination.Params {
	q := r.URL.Query()
	return pagination.Parse(strings.TrimSpace(q.Get("limit")), strings.TrimSpace(q.Get("offset")))
}
