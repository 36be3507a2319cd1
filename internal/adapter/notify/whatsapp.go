package notify

import (
	"net/url"
	"strings"
)

const messagingBaseURL = "https://wa.me"

// internationalPhone rewrites the national trunk prefix to the country code,
// 0501234567 becoming 972501234567.
func internationalPhone(phone string) string {
	if strings.HasPrefix(phone, "0") {
		return "972" + phone[1:]
	}
	return phone
}

// MessageURL builds the messaging deep link for a phone number and a
// pre-filled text body.
func MessageURL(phone, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return messagingBaseURL + "/" + internationalPhone(phone) + "?text=" + encoded
}
