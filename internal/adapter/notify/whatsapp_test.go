package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternationalPhone(t *testing.T) {
	assert.Equal(t, "972501234567", internationalPhone("0501234567"))
	assert.Equal(t, "972212345678", internationalPhone("0212345678"))
	// Already international numbers pass through.
	assert.Equal(t, "972501234567", internationalPhone("972501234567"))
}

func TestMessageURLShape(t *testing.T) {
	link := MessageURL("0501234567", "שלום עולם")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/972501234567?text="))

	// Percent-encoded, no raw spaces or plus signs.
	encoded := strings.TrimPrefix(link, "https://wa.me/972501234567?text=")
	assert.NotContains(t, encoded, " ")
	assert.NotContains(t, encoded, "+")

	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, "שלום עולם", decoded)
}

func TestMessageURLRoundTripsMultilineBody(t *testing.T) {
	body := "שורה ראשונה\nשורה שניה: ערך"
	link := MessageURL("0501234567", body)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, body, parsed.Query().Get("text"))
}
