package pagination

import "strconv"

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any list query can return.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Limit  int
	Offset int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Parse reads raw limit/offset query values. Unparsable values fall back to the
// defaults. A negative offset is kept as given; the store treats it as no offset.
func Parse(rawLimit, rawOffset string) Params {
	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		limit = DefaultLimit
	}
	offset, err := strconv.Atoi(rawOffset)
	if err != nil {
		offset = 0
	}
	return Params{Limit: NormalizeLimit(limit), Offset: offset}
}
