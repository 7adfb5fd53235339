package validator

import (
	"regexp"
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

// Time-of-day validation ("HH:MM")
func IsValidTimeOfDay(timeStr string) bool {
	_, err := time.Parse("15:04", timeStr)
	return err == nil
}

// Shifts is the closed set of work shift names used across the site.
var Shifts = []string{"Manhã", "Tarde", "Noite"}

func IsValidShift(shift string) bool {
	return IsInSlice(shift, Shifts)
}

// Registration id validation: the badge number printed on the HR roster,
// digits only, up to 10 characters.
var registrationIDRegex = regexp.MustCompile(`^\d{1,10}$`)

func IsValidRegistrationID(id string) bool {
	return registrationIDRegex.MatchString(id)
}

// Weekdays is the accepted set of scheduled work day names.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func IsValidWeekday(day string) bool {
	return IsInSlice(day, Weekdays)
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
