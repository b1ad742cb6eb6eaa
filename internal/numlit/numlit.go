// Package numlit classifies and parses the numeric literals accepted on the
// calculator's input line: plain decimal integers and decimals with an
// optional exponent.
package numlit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotNumber = errors.New("not a numeric literal")

type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

// Literal is a validated literal with the sign split off, ready for strconv.
type Literal struct {
	Kind       Kind
	Negative   bool
	Normalized string
}

func Normalize(lit string) (Literal, error) {
	s := lit
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return Literal{}, fmt.Errorf("%w: %q", ErrNotNumber, lit)
	}

	if !strings.ContainsAny(s, ".eE") {
		if err := validateDigits(s); err != nil {
			return Literal{}, fmt.Errorf("%w: %v", ErrNotNumber, err)
		}
		return Literal{Kind: KindInt, Negative: neg, Normalized: s}, nil
	}

	norm, err := normalizeFloat(s)
	if err != nil {
		return Literal{}, fmt.Errorf("%w: %v", ErrNotNumber, err)
	}
	return Literal{Kind: KindFloat, Negative: neg, Normalized: norm}, nil
}

// Parse converts lit to a float64. Every error wraps ErrNotNumber.
func Parse(lit string) (float64, error) {
	info, err := Normalize(lit)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(info.Normalized, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, fmt.Errorf("%w: literal out of range", ErrNotNumber)
		}
		return 0, fmt.Errorf("%w: invalid literal", ErrNotNumber)
	}
	if info.Negative {
		v = -v
	}
	return v, nil
}

func normalizeFloat(s string) (string, error) {
	mantissa := s
	expNorm := ""
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		mantissa = s[:idx]
		expPart := s[idx+1:]
		sign := ""
		if expPart != "" && (expPart[0] == '+' || expPart[0] == '-') {
			sign = expPart[:1]
			expPart = expPart[1:]
		}
		if expPart == "" {
			return "", fmt.Errorf("exponent requires digits")
		}
		if err := validateDigits(expPart); err != nil {
			return "", fmt.Errorf("invalid exponent: %w", err)
		}
		expNorm = "e" + sign + expPart
	}

	mantissaNorm, err := normalizeMantissa(mantissa)
	if err != nil {
		return "", err
	}
	return mantissaNorm + expNorm, nil
}

// normalizeMantissa accepts "1.5", "1." and ".5" but not ".".
func normalizeMantissa(mantissa string) (string, error) {
	if mantissa == "" {
		return "", fmt.Errorf("literal requires digits")
	}
	whole, frac, hasDot := strings.Cut(mantissa, ".")
	if !hasDot {
		if err := validateDigits(whole); err != nil {
			return "", err
		}
		return whole, nil
	}
	if whole == "" && frac == "" {
		return "", fmt.Errorf("literal requires digits")
	}
	if whole == "" {
		whole = "0"
	}
	if frac == "" {
		frac = "0"
	}
	if err := validateDigits(whole); err != nil {
		return "", err
	}
	if err := validateDigits(frac); err != nil {
		return "", err
	}
	return whole + "." + frac, nil
}

// validateDigits only admits 0-9, so base prefixes and digit separators are
// rejected along with any other letter.
func validateDigits(s string) error {
	if s == "" {
		return fmt.Errorf("digits required")
	}
	for i := 0; i < len(s); i++ {
		if ch := s[i]; ch < '0' || ch > '9' {
			return fmt.Errorf("invalid digit %q", ch)
		}
	}
	return nil
}
