package openlibrary

import "encoding/json"

// Loosely typed fields are kept as json.RawMessage. The catalog encodes them
// inconsistently (string or object, key or nested reference) and they are
// interpreted by catalog's normalizer, never here.

// TypeRef is the {"key": "/type/..."} marker carried by every record.
type TypeRef struct {
	Key string `json:"key"`
}

const (
	TypeRedirect = "/type/redirect"
	TypeDelete   = "/type/delete"
)

// Work matches works/{id}.json
type Work struct {
	Key              string          `json:"key"`
	Type             TypeRef         `json:"type"`
	Location         string          `json:"location"`
	Title            string          `json:"title"`
	Description      json.RawMessage `json:"description"`
	Subjects         json.RawMessage `json:"subjects"`
	Covers           json.RawMessage `json:"covers"`
	Authors          json.RawMessage `json:"authors"`
	FirstPublishDate json.RawMessage `json:"first_publish_date"`
}

// Author matches authors/{id}.json
type Author struct {
	Key          string          `json:"key"`
	Type         TypeRef         `json:"type"`
	Name         string          `json:"name"`
	PersonalName string          `json:"personal_name"`
	Bio          json.RawMessage `json:"bio"`
	Photos       json.RawMessage `json:"photos"`
}

// AuthorWorksResponse matches authors/{id}/works.json
type AuthorWorksResponse struct {
	Size    int               `json:"size"`
	Entries []json.RawMessage `json:"entries"`
}

// AuthorWorkEntry is one element of AuthorWorksResponse.Entries.
type AuthorWorkEntry struct {
	Key    string          `json:"key"`
	Title  string          `json:"title"`
	Covers json.RawMessage `json:"covers"`
}

// SearchResponse matches search.json
type SearchResponse struct {
	NumFound int               `json:"numFound"`
	Docs     []json.RawMessage `json:"docs"`
}

// SearchDoc is one element of SearchResponse.Docs.
type SearchDoc struct {
	Key    string          `json:"key"`
	Title  string          `json:"title"`
	CoverI json.RawMessage `json:"cover_i"`
}

// AuthorSearchResponse matches search/authors.json
type AuthorSearchResponse struct {
	NumFound int               `json:"numFound"`
	Docs     []json.RawMessage `json:"docs"`
}

// AuthorSearchDoc is one element of AuthorSearchResponse.Docs.
type AuthorSearchDoc struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// SubjectResponse matches subjects/{slug}.json
type SubjectResponse struct {
	Name      string            `json:"name"`
	WorkCount int               `json:"work_count"`
	Works     []json.RawMessage `json:"works"`
}

// SubjectWork is one element of SubjectResponse.Works.
type SubjectWork struct {
	Key     string          `json:"key"`
	Title   string          `json:"title"`
	CoverID json.RawMessage `json:"cover_id"`
}

// RatingsResponse matches works/{id}/ratings.json
type RatingsResponse struct {
	Summary RatingsSummary `json:"summary"`
}

type RatingsSummary struct {
	Average json.RawMessage `json:"average"`
	Count   int             `json:"count"`
}
