package tests

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/maybe3/pkg/credentials"
	"github.com/ib-77/maybe3/pkg/maybe"
	"github.com/ib-77/maybe3/pkg/maybe/chain"
)

var sheetIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{10,}$`)

// TestExportURLsDirectly builds export URLs for sheet ids without any HTTP requests
func TestExportURLsDirectly(t *testing.T) {
	ids := []string{
		"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"abcDEF123_-xyz",
		"",
		"short",
		"has spaces in it",
	}

	results := make([]string, 0, len(ids))
	for _, id := range ids {
		results = append(results, exportURL(id))
	}

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}

	assert.Equal(t, len(ids), len(results))
	assert.Equal(t, 3, invalidCount)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abcDEF123_-xyz/export?format=csv", results[1])
}

func TestCredentialsGateDownload(t *testing.T) {
	ctx := context.Background()

	source := credentials.FirstAvailable(
		credentials.DocumentSource{},
		credentials.DocumentSource{Document: []byte(`{"app_name": "sheets", "client_id": "id", "client_secret": "secret"}`)},
	)

	initialized := false
	source.Credentials(ctx).Match(
		func(c credentials.Credentials) { initialized = c.IsCorrect() },
		func() { t.Fatalf("expected credentials") },
	)
	assert.True(t, initialized)

	broken := credentials.DocumentSource{Document: []byte(`{"app_name": "sheets"}`)}.Credentials(ctx)
	_, err := broken.Get()
	require.Error(t, err)
	assert.True(t, maybe.IsNoneValue(err))
	assert.Equal(t, "field missing: client_id, client_secret", err.Error())
}

func exportURL(id string) string {
	return chain.Finally(
		chain.Map(
			chain.FromValue(id).Validate(validateSheetID),
			func(id string) string {
				return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", id)
			}),
		func(url string) string { return url },
		func(reason string) string { return "invalid" },
	)
}

func validateSheetID(id string) (bool, string) {
	return sheetIDPattern.MatchString(id), "malformed sheet id"
}
