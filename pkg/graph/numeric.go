package graph

import "strconv"

// maxIntegerDigits is the longest accepted decimal literal
const maxIntegerDigits = 10

// ParseInteger parses an unsigned decimal literal of 1 to 10 digits whose
// value does not exceed MaxWeight. Signs, spaces and other characters are
// rejected.
func ParseInteger(s string) (int64, error) {
	if s == "" || len(s) > maxIntegerDigits {
		return 0, ErrInvalidInteger
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidInteger
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v > MaxWeight {
		return 0, ErrInvalidInteger
	}
	return v, nil
}
