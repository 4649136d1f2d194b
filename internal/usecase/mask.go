package usecase

import "strings"

// MaskSecret shows at most the last four characters of a secret
func MaskSecret(secret string) string {
	secret = strings.TrimSpace(secret)
	switch {
	case secret == "":
		return ""
	case len(secret) <= 8:
		return "***"
	default:
		return "***" + secret[len(secret)-4:]
	}
}
