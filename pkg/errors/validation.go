package errors

import (
	"strings"
	"unicode"
)

// MaxLightCount bounds the number of light disks accepted from user input.
// Both algorithms are quadratic in the row length.
const MaxLightCount = 4096

// ValidateLightCount checks a light disk count read from flags or config.
func ValidateLightCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "light count cannot be negative, got %d", n)
	}
	if n > MaxLightCount {
		return New(ErrCodeInvalidInput, "light count too large (max %d), got %d", MaxLightCount, n)
	}
	return nil
}

// MaxTraceLightCount bounds the light count of traced sorts. A trace holds
// k(k-1)/2 snapshots of a 2k-disk row, so its memory is cubic in k.
const MaxTraceLightCount = 256

// ValidateTraceLightCount checks a light count for a traced sort.
func ValidateTraceLightCount(n int) error {
	if err := ValidateLightCount(n); err != nil {
		return err
	}
	if n > MaxTraceLightCount {
		return New(ErrCodeInvalidInput, "light count too large to trace (max %d), got %d", MaxTraceLightCount, n)
	}
	return nil
}

// ValidateRange checks an inclusive range of light counts.
func ValidateRange(lo, hi int) error {
	if err := ValidateLightCount(lo); err != nil {
		return Wrap(ErrCodeInvalidRange, err, "invalid range start")
	}
	if err := ValidateLightCount(hi); err != nil {
		return Wrap(ErrCodeInvalidRange, err, "invalid range end")
	}
	if hi < lo {
		return New(ErrCodeInvalidRange, "range end %d is below range start %d", hi, lo)
	}
	return nil
}

// ValidatePath validates an output or config file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path cannot start or end with whitespace")
	}

	return nil
}
