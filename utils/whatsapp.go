package utils

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link that opens a chat with the given
// phone number and a pre-filled message. wa.me expects the number without
// the leading plus.
func WhatsAppLink(phone, message string) string {
	number := strings.TrimPrefix(NormalizePhone(phone), "+")
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
