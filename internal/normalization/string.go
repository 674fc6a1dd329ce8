package normalization

import "strings"

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// MatricNo and CourseCode are stored uppercased; lookups must apply the
// same folding before hitting the store.
func MatricNo(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

func CourseCode(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}
