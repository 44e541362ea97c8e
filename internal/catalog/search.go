package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bookbrowser/internal/platform/openlibrary"
)

// NormalizeSearchKind folds case and surrounding space out of a raw kind.
func NormalizeSearchKind(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseSearchKind validates a caller-supplied search kind.
func ParseSearchKind(raw string) (SearchKind, error) {
	switch k := SearchKind(NormalizeSearchKind(raw)); k {
	case KindTitle, KindAuthor:
		return k, nil
	default:
		return "", fmt.Errorf("%w: search kind must be %q or %q, got %q", ErrInvalidArgument, KindTitle, KindAuthor, raw)
	}
}

// Search runs one catalog search and returns hits in the catalog's relevance
// order. Hits that cannot be normalized are dropped.
func (s *Service) Search(ctx context.Context, query string, kind SearchKind) ([]SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query must not be empty", ErrInvalidArgument)
	}
	kind, err := ParseSearchKind(string(kind))
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "catalog.Search")
	defer span.End()

	if kind == KindAuthor {
		res, err := s.ol.SearchAuthors(ctx, query, s.cfg.SearchLimit)
		if err != nil {
			span.RecordError(err)
			return nil, upstreamErr(ctx, "search authors", err)
		}
		return s.authorHits(ctx, res.Docs), nil
	}

	res, err := s.ol.SearchWorks(ctx, query, s.cfg.SearchLimit)
	if err != nil {
		span.RecordError(err)
		return nil, upstreamErr(ctx, "search works", err)
	}
	return s.workHits(ctx, res.Docs), nil
}

func (s *Service) workHits(ctx context.Context, docs []json.RawMessage) []SearchHit {
	hits := make([]SearchHit, 0, len(docs))
	for _, raw := range docs {
		var doc openlibrary.SearchDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			s.degraded(ctx, "search", "hit", err)
			continue
		}
		summary, ok, err := normalizeSummary(doc.Key, doc.Title, doc.CoverI, ImageMedium)
		if !ok {
			s.degraded(ctx, "search", "hit", fmt.Errorf("work hit %q has no usable id or title", doc.Key))
			continue
		}
		if err != nil {
			s.degraded(ctx, "search", "cover", err)
		}
		hits = append(hits, WorkHit(summary))
	}
	return hits
}

// authorHits keeps the first hit for each author name. The catalog often
// lists one person under several records; later duplicates are dropped so
// relevance order is kept.
func (s *Service) authorHits(ctx context.Context, docs []json.RawMessage) []SearchHit {
	hits := make([]SearchHit, 0, len(docs))
	seen := make(map[string]bool, len(docs))
	for _, raw := range docs {
		var doc openlibrary.AuthorSearchDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			s.degraded(ctx, "search", "hit", err)
			continue
		}
		id := NormalizeID(doc.Key, AuthorsPrefix)
		name := strings.TrimSpace(doc.Name)
		if id == "" || name == "" {
			s.degraded(ctx, "search", "hit", fmt.Errorf("author hit %q has no usable id or name", doc.Key))
			continue
		}
		key := authorNameKey(name)
		if seen[key] {
			s.logger.DebugContext(ctx, "duplicate author hit dropped", "author_id", id, "name", name)
			continue
		}
		seen[key] = true
		hits = append(hits, AuthorHit(id, name))
	}
	return hits
}

// authorNameKey compares names case-insensitively with runs of whitespace
// collapsed, so "J.R.R.  Tolkien" and "j.r.r. tolkien" match.
func authorNameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
