package ident

// Bare reports whether s can be printed as a bare identifier in an error
// path: one or more letters, digits, or underscores, not starting with a
// digit. Anything else must be quoted by the caller.
// Examples:
//   - "user_name" → true
//   - "_internal" → true
//   - "2fa"       → false
//   - "first-name" → false
func Bare(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
