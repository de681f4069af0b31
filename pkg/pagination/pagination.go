package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 50
	// MaxLimit caps how many rows any listing can return.
	MaxLimit = 500
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Limit  int
	Offset int
}

// Info describes the page that was cut from a larger result set.
type Info struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
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

// Slice returns the requested window of items without copying the backing array.
func Slice[T any](items []T, params Params) ([]T, Info) {
	limit := NormalizeLimit(params.Limit)
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	total := len(items)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return items[offset:end], Info{
		Limit:   limit,
		Offset:  offset,
		Total:   total,
		HasMore: end < total,
	}
}
