package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "https", input: "https://example.com", want: "https://example.com"},
		{name: "http with path", input: "http://example.com/a/b?c=d", want: "http://example.com/a/b?c=d"},
		{name: "missing scheme", input: "example.com", wantErr: true},
		{name: "bare host with dot", input: "invalid-url.com", wantErr: true},
		{name: "ftp scheme", input: "ftp://example.com", wantErr: true},
		{name: "scheme only", input: "https://", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "relative path", input: "/just/a/path", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidInputError
				require.True(t, errors.As(err, &invalid))
				assert.Equal(t, "url", invalid.Field)
				assert.Contains(t, invalid.Message, "http://")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"joelperez91@gmail.com",
		"a.b+tag@sub.example.org",
		"x@y.zz",
	}
	for _, in := range valid {
		t.Run(in, func(t *testing.T) {
			got, err := ValidateEmail(in)
			require.NoError(t, err)
			assert.Equal(t, in, string(got))
		})
	}

	invalid := []string{
		"invalid-email",
		"no-at-sign.com",
		"two@@example.com",
		"spaces in@example.com",
		"nodot@example",
		"",
	}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ValidateEmail(in)
			require.Error(t, err)
			var invalidErr *InvalidInputError
			require.True(t, errors.As(err, &invalidErr))
			assert.Equal(t, "email", invalidErr.Field)
		})
	}
}

func TestValidateSSID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "single char", input: "a"},
		{name: "typical", input: "TestSSID"},
		{name: "exactly 32", input: strings.Repeat("s", 32)},
		{name: "empty", input: "", wantErr: true},
		{name: "33 chars", input: strings.Repeat("s", 33), wantErr: true},
		{name: "multibyte runes count as one", input: strings.Repeat("ñ", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSSID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(got))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "exactly 8", input: "12345678"},
		{name: "typical", input: "TestPassword"},
		{name: "exactly 63", input: strings.Repeat("p", 63)},
		{name: "7 chars", input: "1234567", wantErr: true},
		{name: "single char", input: "T", wantErr: true},
		{name: "64 chars", input: strings.Repeat("p", 64), wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePassword(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidInputError
				require.True(t, errors.As(err, &invalid))
				assert.Contains(t, invalid.Message, "SSID or Password")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(got))
		})
	}
}

func TestInvalidInputErrorCode(t *testing.T) {
	err := &InvalidInputError{Field: "url", Message: "nope"}
	assert.Equal(t, "invalid_input", err.Code())
	assert.Equal(t, "invalid url", err.Error())
}
