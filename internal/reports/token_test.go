package reports

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestSignAndParseLink(t *testing.T) {
	now := time.Now()
	token, exp, err := signLink(testSecret, "user-1", "2026-08-01", "2026-08-31", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(linkTTL), exp, time.Second)

	claims, err := parseLink(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "2026-08-01", claims.From)
	assert.Equal(t, "2026-08-31", claims.To)
}

func TestParseLinkRejectsExpired(t *testing.T) {
	issued := time.Now().Add(-2 * linkTTL)
	token, _, err := signLink(testSecret, "user-1", "2026-08-01", "2026-08-31", issued)
	require.NoError(t, err)

	_, err = parseLink(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseLinkRejectsWrongSecret(t *testing.T) {
	token, _, err := signLink(testSecret, "user-1", "2026-08-01", "2026-08-31", time.Now())
	require.NoError(t, err)

	_, err = parseLink([]byte("other-secret"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseLinkRejectsGarbage(t *testing.T) {
	_, err := parseLink(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTrimToKeepsRunesIntact(t *testing.T) {
	// Multi-byte descriptions must never be cut mid-rune.
	s := "caffè al bar — colazione città"
	for n := 2; n <= len([]rune(s))+1; n++ {
		out := trimTo(s, n)
		assert.True(t, utf8.ValidString(out), "trimTo(%q, %d) = %q is not valid UTF-8", s, n, out)
		assert.LessOrEqual(t, len([]rune(out)), n)
	}

	assert.Equal(t, "short", trimTo("short", 60))
}

func TestBuildStatementPDF(t *testing.T) {
	items := []statementRow{
		{Date: "2026-08-31", Category: "food", Description: "lunch", Amount: 1250},
		{Date: "2026-08-30", Category: "transport", Description: "", Amount: 900},
	}
	pdfBytes, err := buildStatementPDF(items, 2150, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestBuildStatementPDFEmptyPeriod(t *testing.T) {
	pdfBytes, err := buildStatementPDF(nil, 0, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
}
