package store

const (
	// DefaultLimit applies when a list request names no limit.
	DefaultLimit = 100
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 1000
)

// Page is an offset/limit window over an ordered result sequence.
type Page struct {
	Offset int
	Limit  int
}

// NewPage normalizes raw offset/limit values: negative offsets become 0,
// a zero or negative limit becomes DefaultLimit, and the limit is
// clamped to MaxLimit.
func NewPage(offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Offset: offset, Limit: limit}
}
