package queries

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ValidateLimit clamps limit into (0, MaxListLimit], defaulting when unset.
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func ValidateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
