// Package validate checks the shape of user-supplied flow fields. Validators
// are pure: a typed value is only ever produced from input that passed its
// check, and invalid input yields an *InvalidInputError carrying the exact
// reply the bot shows the user.
package validate

import (
	"errors"
	"net/url"
	"regexp"
	"unicode/utf8"
)

// Validated field values. Constructing one outside this package skips
// validation; don't.
type (
	// URL is an absolute http(s) URL in canonical form.
	URL string
	// Email is a syntactically valid email address.
	Email string
	// SSID is a Wi-Fi network name of 1-32 characters.
	SSID string
	// Password is a WPA passphrase of 8-63 characters.
	Password string
)

// InvalidInputError reports a field that failed validation. Message is
// user-facing and sent back to the chat verbatim.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid " + e.Field
}

// Code labels the error kind for structured logs.
func (e *InvalidInputError) Code() string {
	return "invalid_input"
}

const (
	msgInvalidURL      = "❌ Invalid URL. Please send a valid URL starting with 'http://' or 'https://'."
	msgInvalidEmail    = "❌ Invalid email. Please send a valid email address."
	msgInvalidSSID     = "❌ Invalid SSID. Please send a valid SSID (1-32 characters)."
	msgInvalidWifiPair = "❌ Invalid SSID or Password. Please send a valid SSID (1-32 characters) and a Valid Password between 8 and 63 characters."
)

// local-part@domain with at least one dot in the domain and no whitespace.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Message extracts the user-facing reply from a validation error.
func Message(err error) string {
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		return ie.Message
	}
	return "❌ Invalid input. Please try again."
}

// ValidateURL accepts absolute http/https URLs and returns the canonical
// form of the parsed URL.
func ValidateURL(s string) (URL, error) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", &InvalidInputError{Field: "url", Message: msgInvalidURL}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &InvalidInputError{Field: "url", Message: msgInvalidURL}
	}
	return URL(u.String()), nil
}

// ValidateEmail accepts addresses matching a standard email grammar.
func ValidateEmail(s string) (Email, error) {
	if !emailRe.MatchString(s) {
		return "", &InvalidInputError{Field: "email", Message: msgInvalidEmail}
	}
	return Email(s), nil
}

// ValidateSSID accepts network names of 1 to 32 characters.
func ValidateSSID(s string) (SSID, error) {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > 32 {
		return "", &InvalidInputError{Field: "ssid", Message: msgInvalidSSID}
	}
	return SSID(s), nil
}

// ValidatePassword accepts WPA passphrases of 8 to 63 characters. The
// failure message names both SSID and password even though the SSID was
// checked a step earlier.
func ValidatePassword(s string) (Password, error) {
	n := utf8.RuneCountInString(s)
	if n < 8 || n > 63 {
		return "", &InvalidInputError{Field: "password", Message: msgInvalidWifiPair}
	}
	return Password(s), nil
}
