package reviews

import "strings"

// ObfuscateName masks a reviewer's name for public display: first initial of
// the first and last tokens, remaining letters replaced with asterisks.
// Single-token names get the initial plus three asterisks; single-character
// tokens are shown as a bare initial.
func ObfuscateName(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "Anonymous"
	}

	if len(parts) == 1 {
		return string([]rune(parts[0])[0]) + "***"
	}

	return maskToken(parts[0]) + " " + maskToken(parts[len(parts)-1])
}

func maskToken(token string) string {
	runes := []rune(token)
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}
