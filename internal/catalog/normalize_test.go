package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		raw, prefix, want string
	}{
		{"/works/OL45804W", WorksPrefix, "OL45804W"},
		{"OL45804W", WorksPrefix, "OL45804W"},
		{" /authors/OL26320A ", AuthorsPrefix, "OL26320A"},
		{"/authors/OL26320A", WorksPrefix, "/authors/OL26320A"},
		{"", WorksPrefix, ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizeID(tt.raw, tt.prefix)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeID(got, tt.prefix), "normalizing twice must not change the id")
		})
	}
}

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain string", raw: `"A hobbit goes on a journey."`, want: "A hobbit goes on a journey."},
		{name: "typed value", raw: `{"type":"/type/text","value":"Lengthy text"}`, want: "Lengthy text"},
		{name: "trimmed", raw: `"  padded\n"`, want: "padded"},
		{name: "absent", raw: ``, want: NoDescription},
		{name: "null", raw: `null`, want: NoDescription},
		{name: "empty string", raw: `""`, want: ""},
		{name: "number", raw: `42`, wantErr: true},
		{name: "object without value", raw: `{"type":"/type/text"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDescription(json.RawMessage(tt.raw))
			if tt.wantErr {
				var shape *ShapeError
				require.True(t, errors.As(err, &shape))
				assert.Equal(t, "description", shape.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeCoverRef(t *testing.T) {
	assert.Nil(t, NormalizeCoverRef(nil, ImageLarge))
	assert.Nil(t, NormalizeCoverRef(intPtr(-1), ImageLarge))
	assert.Nil(t, NormalizeCoverRef(intPtr(-7), ImageMedium))

	got := NormalizeCoverRef(intPtr(8231856), ImageLarge)
	require.NotNil(t, got)
	assert.Equal(t, "https://covers.openlibrary.org/b/id/8231856-L.jpg", *got)

	photo := NormalizePhotoRef(intPtr(6257741), ImageMedium)
	require.NotNil(t, photo)
	assert.Equal(t, "https://covers.openlibrary.org/a/id/6257741-M.jpg", *photo)
}

func TestNormalizeAuthorRef(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare key", raw: `"/authors/OL26320A"`, want: "OL26320A"},
		{name: "key object", raw: `{"key":"/authors/OL26320A"}`, want: "OL26320A"},
		{name: "role entry", raw: `{"type":{"key":"/type/author_role"},"author":{"key":"/authors/OL26320A"}}`, want: "OL26320A"},
		{name: "absent", raw: ``, want: ""},
		{name: "unknown object", raw: `{"name":"Tolkien"}`, wantErr: true},
		{name: "number", raw: `7`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAuthorRef(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrimaryAuthorRef(t *testing.T) {
	got, err := PrimaryAuthorRef(json.RawMessage(`[{"author":{"key":"/authors/OL1A"}},{"author":{"key":"/authors/OL2A"}}]`))
	require.NoError(t, err)
	assert.Equal(t, "OL1A", got)

	got, err = PrimaryAuthorRef(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = PrimaryAuthorRef(json.RawMessage(`{"key":"/authors/OL1A"}`))
	assert.Error(t, err)
}

func TestFirstImageID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *int
		wantErr bool
	}{
		{name: "single", raw: `11481354`, want: intPtr(11481354)},
		{name: "sentinel", raw: `-1`},
		{name: "list skips sentinel", raw: `[-1, 14625765, 3]`, want: intPtr(14625765)},
		{name: "only sentinels", raw: `[-1]`},
		{name: "absent", raw: ``},
		{name: "string", raw: `"cover"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstImageID(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSubjects(t *testing.T) {
	got, err := NormalizeSubjects(json.RawMessage(`["Fantasy", " ", {"name":"Quests"}, "Fantasy", 3]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Fantasy", "Quests"}, got)

	got, err = NormalizeSubjects(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = NormalizeSubjects(json.RawMessage(`"Fantasy"`))
	assert.Error(t, err)
}

func TestNormalizeYear(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{`1954`, intPtr(1954)},
		{`"July 29, 1954"`, intPtr(1954)},
		{`"1954-07-29"`, intPtr(1954)},
		{`"unknown"`, nil},
		{`0`, nil},
		{``, nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeYear(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRating(t *testing.T) {
	got, err := NormalizeRating(json.RawMessage(`4.25`))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 4.25, *got, 1e-9)

	got, err = NormalizeRating(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = NormalizeRating(json.RawMessage(`"high"`))
	assert.Error(t, err)
}

func TestNormalizeSummary(t *testing.T) {
	s, ok, err := normalizeSummary("/works/OL1W", " Title ", json.RawMessage(`[5]`), ImageMedium)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "OL1W", s.ID)
	assert.Equal(t, "Title", s.Title)
	require.NotNil(t, s.CoverImageURL)

	s, ok, err = normalizeSummary("/works/OL1W", "Title", json.RawMessage(`{"id":5}`), ImageMedium)
	assert.True(t, ok)
	assert.Error(t, err)
	assert.Nil(t, s.CoverImageURL)

	_, ok, _ = normalizeSummary("/books/OL1M", "Title", nil, ImageMedium)
	assert.False(t, ok)

	_, ok, _ = normalizeSummary("/works/OL1W", "", nil, ImageMedium)
	assert.False(t, ok)
}
