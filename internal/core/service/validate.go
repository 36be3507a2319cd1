package service

import (
	"regexp"
	"strings"
	"time"
)

// ValidationError carries the first failing field and a user-facing reason.
// Validation is fail-fast: a customer reads one message at a time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Local dialing pattern: leading 0, area digit 2-9, then 7-8 further digits.
var phonePattern = regexp.MustCompile(`^0[2-9]\d{7,8}$`)

const dateLayout = "2006-01-02"

// MinDeliveryDate returns the earliest accepted delivery date, which is the
// day after now.
func MinDeliveryDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(dateLayout)
}

// validateFields checks the required customer fields on the draft. Address
// acceptability is delegated to the resolver by the caller.
func (d *Draft) validateFields(now time.Time) *ValidationError {
	if strings.TrimSpace(d.CustomerName) == "" {
		return &ValidationError{Field: "customerName", Reason: "אנא מלא את השדה: שם מלא"}
	}
	if strings.TrimSpace(d.CustomerPhone) == "" {
		return &ValidationError{Field: "customerPhone", Reason: "אנא מלא את השדה: טלפון"}
	}
	if strings.TrimSpace(d.DeliveryDate) == "" {
		return &ValidationError{Field: "deliveryDate", Reason: "אנא מלא את השדה: תאריך משלוח"}
	}
	if !phonePattern.MatchString(d.CustomerPhone) {
		return &ValidationError{Field: "customerPhone", Reason: "מספר טלפון לא תקין"}
	}
	date, err := time.Parse(dateLayout, d.DeliveryDate)
	if err != nil {
		return &ValidationError{Field: "deliveryDate", Reason: "תאריך משלוח לא תקין"}
	}
	tomorrow, _ := time.Parse(dateLayout, MinDeliveryDate(now))
	if date.Before(tomorrow) {
		return &ValidationError{Field: "deliveryDate", Reason: "תאריך המשלוח חייב להיות ממחר ואילך"}
	}
	return nil
}
