package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analysis.json")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	path := writeDoc(t, `{
		"controllers": [
			{"name": "Order", "endpoints": [
				{"name": "create", "service_calls": ["PaymentService"]},
				{"name": "cancel"}
			]}
		],
		"dtos": ["OrderDto"],
		"validations": ["missingField"],
		"exceptions": ["OrderNotFound"]
	}`)

	doc, err := Load(path)
	require.NoError(t, err)

	require.Len(t, doc.Controllers, 1)
	assert.Equal(t, "Order", doc.Controllers[0].Name)
	require.Len(t, doc.Controllers[0].Endpoints, 2)
	assert.Equal(t, []string{"PaymentService"}, doc.Controllers[0].Endpoints[0].ServiceCalls)
	assert.Equal(t, []string{"missingField"}, doc.Validations)
	assert.Equal(t, []string{"OrderNotFound"}, doc.Exceptions)
	assert.Equal(t, 2, doc.EndpointCount())

	// Absent service_calls on "cancel" must come back empty, not nil.
	assert.NotNil(t, doc.Controllers[0].Endpoints[1].ServiceCalls)
	assert.Empty(t, doc.Controllers[0].Endpoints[1].ServiceCalls)
}

func TestLoad_EmptyDocument(t *testing.T) {
	doc, err := Load(writeDoc(t, `{}`))
	require.NoError(t, err)

	assert.NotNil(t, doc.Controllers)
	assert.NotNil(t, doc.DTOs)
	assert.NotNil(t, doc.Validations)
	assert.NotNil(t, doc.Exceptions)
	assert.Equal(t, 0, doc.EndpointCount())
}

func TestLoad_UnknownKeysIgnored(t *testing.T) {
	doc, err := Load(writeDoc(t, `{"validations": ["v1"], "analyzer_version": 3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"v1"}, doc.Validations)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading analysis document")
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := Load(writeDoc(t, `{"controllers": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing analysis document")
}
