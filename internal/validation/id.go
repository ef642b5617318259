package validation

// IDLength is the length of a purchase identifier: a UUID rendered as hex without hyphens.
const IDLength = 32

// IsValidID reports whether s is a well-formed purchase identifier.
func IsValidID(s string) bool {
	if len(s) != IDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHex(s[i]) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
