package catalog

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSearchHit_JSON(t *testing.T) {
	t.Run("work hit without cover keeps a null cover", func(t *testing.T) {
		out, err := json.Marshal(WorkHit(WorkSummary{ID: "OL1W", Title: "Untitled"}))

		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"work","id":"OL1W","title":"Untitled","coverImageUrl":null}`, string(out))
	})

	t.Run("author hit carries no work fields", func(t *testing.T) {
		out, err := json.Marshal(AuthorHit("OL26320A", "J.R.R. Tolkien"))

		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"author","id":"OL26320A","name":"J.R.R. Tolkien"}`, string(out))
	})

	t.Run("inside a slice", func(t *testing.T) {
		out, err := json.Marshal([]SearchHit{WorkHit(WorkSummary{ID: "OL1W", Title: "Untitled"})})

		require.NoError(t, err)
		assert.Contains(t, string(out), `"coverImageUrl":null`)
	})
}

func TestSearchHit_YAML(t *testing.T) {
	out, err := yaml.Marshal([]SearchHit{
		WorkHit(WorkSummary{ID: "OL1W", Title: "Untitled"}),
		AuthorHit("OL26320A", "J.R.R. Tolkien"),
	})

	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Len(t, got, 2)

	cover, ok := got[0]["coverImageUrl"]
	assert.True(t, ok, "work hit must carry coverImageUrl")
	assert.Nil(t, cover)

	_, hasTitle := got[1]["title"]
	_, hasCover := got[1]["coverImageUrl"]
	assert.False(t, hasTitle)
	assert.False(t, hasCover)
}

func TestShapeError_TruncatesOnRuneBoundary(t *testing.T) {
	err := &ShapeError{Field: "description", Raw: strings.Repeat("é", 200)}

	msg := err.Error()

	assert.True(t, utf8.ValidString(msg))
	assert.Contains(t, msg, strings.Repeat("é", maxShapeRawRunes)+"...")
	assert.NotContains(t, msg, strings.Repeat("é", maxShapeRawRunes+1))
}

func TestShapeError_ShortRawUntouched(t *testing.T) {
	err := &ShapeError{Field: "year", Raw: `"soon"`}

	assert.Equal(t, `unrecognized shape for year: "soon"`, err.Error())
}
