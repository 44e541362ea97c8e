package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidArgument is returned when a caller-supplied query, kind or id fails validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstream is returned when the catalog is unreachable or fails a primary fetch.
	ErrUpstream = errors.New("catalog unavailable")
	// ErrWorkNotFound is returned when the catalog has no such work.
	ErrWorkNotFound = errors.New("work not found")
	// ErrAuthorNotFound is returned when the catalog has no such author.
	ErrAuthorNotFound = errors.New("author not found")
)

// maxShapeRawRunes caps how much of an unrecognized payload reaches logs.
const maxShapeRawRunes = 64

// ShapeError reports a payload field present in a shape the normalizer does
// not recognize. It never leaves this package.
type ShapeError struct {
	Field string
	Raw   string
}

func (e *ShapeError) Error() string {
	raw := e.Raw
	if utf8.RuneCountInString(raw) > maxShapeRawRunes {
		raw = string([]rune(raw)[:maxShapeRawRunes]) + "..."
	}
	return fmt.Sprintf("unrecognized shape for %s: %s", e.Field, raw)
}

// SearchKind selects title or author search.
type SearchKind string

const (
	KindTitle  SearchKind = "title"
	KindAuthor SearchKind = "author"
)

// HitKind tags a SearchHit.
type HitKind string

const (
	HitWork   HitKind = "work"
	HitAuthor HitKind = "author"
)

// WorkSummary is the minimal view of a work used in lists.
type WorkSummary struct {
	ID            string  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	CoverImageURL *string `json:"coverImageUrl" yaml:"coverImageUrl"`
}

// AuthorRef identifies an author with display data.
type AuthorRef struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	PhotoURL *string `json:"photoUrl" yaml:"photoUrl"`
}

// WorkDetail is the aggregated view of one work.
type WorkDetail struct {
	ID               string        `json:"id" yaml:"id"`
	Title            string        `json:"title" yaml:"title"`
	Description      string        `json:"description" yaml:"description"`
	Subjects         []string      `json:"subjects" yaml:"subjects"`
	CoverImageURL    *string       `json:"coverImageUrl" yaml:"coverImageUrl"`
	FirstPublishYear *int          `json:"firstPublishYear" yaml:"firstPublishYear"`
	RatingAverage    *float64      `json:"ratingAverage" yaml:"ratingAverage"`
	Author           *AuthorRef    `json:"author" yaml:"author"`
	Recommendations  []WorkSummary `json:"recommendations" yaml:"recommendations"`
}

// SearchHit is either a work or an author. Kind decides which fields are
// set and which are encoded: a work hit always carries coverImageUrl (null
// when absent), an author hit carries only kind, id and name.
type SearchHit struct {
	Kind          HitKind `json:"kind" yaml:"kind"`
	ID            string  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	CoverImageURL *string `json:"coverImageUrl" yaml:"coverImageUrl"`
	Name          string  `json:"name" yaml:"name"`
}

type workHitView struct {
	Kind          HitKind `json:"kind" yaml:"kind"`
	ID            string  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	CoverImageURL *string `json:"coverImageUrl" yaml:"coverImageUrl"`
}

type authorHitView struct {
	Kind HitKind `json:"kind" yaml:"kind"`
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
}

func (h SearchHit) view() any {
	if h.Kind == HitAuthor {
		return authorHitView{Kind: h.Kind, ID: h.ID, Name: h.Name}
	}
	return workHitView{Kind: h.Kind, ID: h.ID, Title: h.Title, CoverImageURL: h.CoverImageURL}
}

func (h SearchHit) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.view())
}

func (h SearchHit) MarshalYAML() (any, error) {
	return h.view(), nil
}

// WorkHit builds a work-tagged SearchHit.
func WorkHit(w WorkSummary) SearchHit {
	return SearchHit{Kind: HitWork, ID: w.ID, Title: w.Title, CoverImageURL: w.CoverImageURL}
}

// AuthorHit builds an author-tagged SearchHit.
func AuthorHit(id, name string) SearchHit {
	return SearchHit{Kind: HitAuthor, ID: id, Name: name}
}
