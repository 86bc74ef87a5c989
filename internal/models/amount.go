package models

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a value is not a positive decimal number.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// Amount is a price in dollars. It is never stored, so every component that
// displays or re-derives it goes through FormatAmount.
type Amount float64

// FormatAmount renders whole amounts without a decimal point and everything
// else with exactly two decimals.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// decimalPattern matches the plain decimals a number input submits. Exponent
// and hex-float forms are not amounts.
var decimalPattern = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)$`)

func parseDecimal(s string) (float64, error) {
	if !decimalPattern.MatchString(s) {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseAmount parses a raw decimal string such as a query parameter or form value.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	a := Amount(v)
	if !a.Valid() {
		return 0, ErrInvalidAmount
	}
	return a, nil
}

// Valid reports whether the amount is finite and greater than zero.
func (a Amount) Valid() bool {
	v := float64(a)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Displayable reports whether the amount is valid and still positive once
// formatted, so links built from it parse back to a valid amount.
func (a Amount) Displayable() bool {
	if !a.Valid() {
		return false
	}
	_, err := ParseAmount(a.String())
	return err == nil
}

// String returns the display form of the amount.
func (a Amount) String() string {
	return FormatAmount(float64(a))
}

// UnmarshalJSON accepts either a JSON number or a numeric string, since the
// web client posts the raw input value. An empty string or null leaves zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			*a = 0
			return nil
		}
		v, err := parseDecimal(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		*a = Amount(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return ErrInvalidAmount
	}
	*a = Amount(v)
	return nil
}
