package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	WorksPrefix   = "/works/"
	AuthorsPrefix = "/authors/"

	// NoDescription replaces an absent description.
	NoDescription = "No description available."

	coversBaseURL = "https://covers.openlibrary.org"
)

// ImageSize is the cover CDN size code.
type ImageSize string

const (
	ImageSmall  ImageSize = "S"
	ImageMedium ImageSize = "M"
	ImageLarge  ImageSize = "L"
)

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// NormalizeID strips prefix from a catalog key. Already-bare ids pass through.
func NormalizeID(raw, prefix string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), prefix)
}

// NormalizeDescription accepts a plain string or a {"value": string} object.
func NormalizeDescription(raw json.RawMessage) (string, error) {
	if absent(raw) {
		return NoDescription, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}
	var wrapped struct {
		Value *string `json:"value"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Value != nil {
		return strings.TrimSpace(*wrapped.Value), nil
	}
	return "", shapeErr("description", raw)
}

// NormalizeCoverRef builds a work cover URL. Nil and negative ids (the
// catalog uses -1 for "no image") yield nil.
func NormalizeCoverRef(id *int, size ImageSize) *string {
	return imageURL("b", id, size)
}

// NormalizePhotoRef is NormalizeCoverRef for author photos.
func NormalizePhotoRef(id *int, size ImageSize) *string {
	return imageURL("a", id, size)
}

func imageURL(kind string, id *int, size ImageSize) *string {
	if id == nil || *id < 0 {
		return nil
	}
	u := fmt.Sprintf("%s/%s/id/%d-%s.jpg", coversBaseURL, kind, *id, size)
	return &u
}

// NormalizeAuthorRef extracts a bare author id from a raw key string, a
// {"key": ...} object or a role entry {"author": {"key": ...}}. An absent
// reference yields "".
func NormalizeAuthorRef(raw json.RawMessage) (string, error) {
	if absent(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return NormalizeID(s, AuthorsPrefix), nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", shapeErr("author", raw)
	}
	if key, ok := obj["key"]; ok {
		if err := json.Unmarshal(key, &s); err == nil {
			return NormalizeID(s, AuthorsPrefix), nil
		}
		return "", shapeErr("author.key", key)
	}
	if nested, ok := obj["author"]; ok {
		return NormalizeAuthorRef(nested)
	}
	return "", shapeErr("author", raw)
}

// PrimaryAuthorRef applies NormalizeAuthorRef to the first entry of a work's
// author list.
func PrimaryAuthorRef(authors json.RawMessage) (string, error) {
	if absent(authors) {
		return "", nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(authors, &list); err != nil {
		return "", shapeErr("authors", authors)
	}
	if len(list) == 0 {
		return "", nil
	}
	return NormalizeAuthorRef(list[0])
}

// FirstImageID returns the first non-sentinel id from a single image id or
// an array of them (covers, photos, cover_i).
func FirstImageID(raw json.RawMessage) (*int, error) {
	if absent(raw) {
		return nil, nil
	}
	var single int
	if err := json.Unmarshal(raw, &single); err == nil {
		if single < 0 {
			return nil, nil
		}
		return &single, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, shapeErr("image", raw)
	}
	for _, item := range list {
		var id int
		if absent(item) || json.Unmarshal(item, &id) != nil || id < 0 {
			continue
		}
		return &id, nil
	}
	return nil, nil
}

// NormalizeSubjects accepts an array of strings or {"name": string} objects.
// Blank and repeated subjects are dropped; order is kept.
func NormalizeSubjects(raw json.RawMessage) ([]string, error) {
	out := []string{}
	if absent(raw) {
		return out, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return out, shapeErr("subjects", raw)
	}
	seen := make(map[string]bool, len(list))
	for _, item := range list {
		name := subjectName(item)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

func subjectName(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.Name)
	}
	return ""
}

// NormalizeYear accepts a number or a date string containing a 4-digit year.
func NormalizeYear(raw json.RawMessage) (*int, error) {
	if absent(raw) {
		return nil, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		if n <= 0 {
			return nil, nil
		}
		return &n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, shapeErr("year", raw)
	}
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}
	y, _ := strconv.Atoi(m[1])
	return &y, nil
}

// NormalizeRating accepts a JSON number.
func NormalizeRating(raw json.RawMessage) (*float64, error) {
	if absent(raw) {
		return nil, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, shapeErr("rating", raw)
	}
	return &f, nil
}

// normalizeSummary builds a WorkSummary from a list entry. ok is false when
// the entry has no usable id or title. A malformed cover only nulls the cover.
func normalizeSummary(key, title string, cover json.RawMessage, size ImageSize) (WorkSummary, bool, error) {
	id := NormalizeID(key, WorksPrefix)
	title = strings.TrimSpace(title)
	if id == "" || strings.Contains(id, "/") || title == "" {
		return WorkSummary{}, false, nil
	}
	coverID, err := FirstImageID(cover)
	return WorkSummary{ID: id, Title: title, CoverImageURL: NormalizeCoverRef(coverID, size)}, true, err
}

func absent(raw json.RawMessage) bool {
	s := bytes.TrimSpace(raw)
	return len(s) == 0 || bytes.Equal(s, []byte("null"))
}

func shapeErr(field string, raw json.RawMessage) *ShapeError {
	return &ShapeError{Field: field, Raw: string(raw)}
}
