// Package qr builds QR payload strings and renders them into images.
package qr

import (
	"fmt"
	"strings"

	"github.com/jpizquierdo/qrcodegen/app/validate"
)

// URLPayload returns the text embedded for a URL code: the canonical URL
// itself, passed to the renderer verbatim.
func URLPayload(u validate.URL) string {
	return string(u)
}

// TextPayload returns free text verbatim; any non-empty string is accepted
// and nothing is validated.
func TextPayload(text string) string {
	return text
}

// WifiPayload builds the WIFI: configuration string scanners understand.
// Known limitation, kept for compatibility with the payloads this bot has
// always produced: special characters in the SSID or password are NOT
// escaped, so a semicolon or colon in either corrupts the payload.
func WifiPayload(ssid validate.SSID, password validate.Password) string {
	return fmt.Sprintf("WIFI:T:WPA;S:%s;P:%s;;", ssid, password)
}

// Contact carries the fields of a vCard payload. Company, Title and URL may
// be empty; the rest are filled by the contact flow before encoding.
type Contact struct {
	Name    string
	Surname string
	Phone   string
	Email   validate.Email
	Company string
	Title   string
	URL     validate.URL
}

// ContactPayload builds a vCard 3.0 text block.
func ContactPayload(c Contact) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		fmt.Sprintf("N:%s;%s;;;", c.Surname, c.Name),
		fmt.Sprintf("TEL;CELL:%s", c.Phone),
		fmt.Sprintf("EMAIL:%s", c.Email),
		fmt.Sprintf("ORG:%s", c.Company),
		fmt.Sprintf("TITLE:%s", c.Title),
		fmt.Sprintf("URL:%s", c.URL),
		"END:VCARD",
	}
	return strings.Join(lines, "\n")
}
