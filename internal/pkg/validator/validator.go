package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00-04:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClockTime checks a zero-padded wall-clock "HH:mm" string.
func IsValidClockTime(s string) bool {
	return clockTimeRegex.MatchString(s)
}

var monthDayRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

// IsValidMonthDay checks a recurring-holiday "MM-dd" string.
func IsValidMonthDay(s string) bool {
	return monthDayRegex.MatchString(s)
}

// RUT validation (Chilean ID), e.g. "12345678-5" or "12.345.678-5".
// Verifies the modulo-11 check digit.
func IsValidRUT(rut string) bool {
	rut = strings.ToUpper(strings.ReplaceAll(rut, ".", ""))
	parts := strings.Split(rut, "-")
	if len(parts) != 2 || len(parts[1]) != 1 {
		return false
	}
	body, dv := parts[0], parts[1]
	if len(body) < 7 || len(body) > 8 || !IsNumeric(body) {
		return false
	}

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		d, _ := strconv.Atoi(string(body[i]))
		sum += d * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	expected := 11 - (sum % 11)
	switch expected {
	case 11:
		return dv == "0"
	case 10:
		return dv == "K"
	default:
		return dv == strconv.Itoa(expected)
	}
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
