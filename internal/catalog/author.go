package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bookbrowser/internal/platform/openlibrary"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GetAuthorWorks lists an author's bibliography. An unknown author and an
// author without works both yield an empty list.
func (s *Service) GetAuthorWorks(ctx context.Context, authorID string) ([]WorkSummary, error) {
	authorID = NormalizeID(authorID, AuthorsPrefix)
	if err := validateID("author", authorID); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "catalog.GetAuthorWorks", trace.WithAttributes(attribute.String("author.id", authorID)))
	defer span.End()

	res, err := s.ol.GetAuthorWorks(ctx, authorID, s.cfg.AuthorWorksLimit)
	if err != nil {
		if errors.Is(err, openlibrary.ErrNotFound) {
			return []WorkSummary{}, nil
		}
		span.RecordError(err)
		return nil, upstreamErr(ctx, "get author works", err)
	}

	works := make([]WorkSummary, 0, len(res.Entries))
	for _, raw := range res.Entries {
		var entry openlibrary.AuthorWorkEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			s.degraded(ctx, "author_works", "entry", err)
			continue
		}
		summary, ok, err := normalizeSummary(entry.Key, entry.Title, entry.Covers, ImageMedium)
		if !ok {
			s.degraded(ctx, "author_works", "entry", &ShapeError{Field: "entry", Raw: string(raw)})
			continue
		}
		if err != nil {
			s.degraded(ctx, "author_works", "cover", err)
		}
		works = append(works, summary)
	}
	return works, nil
}

// GetAuthor loads the author record shown above a bibliography.
func (s *Service) GetAuthor(ctx context.Context, authorID string) (AuthorRef, error) {
	authorID = NormalizeID(authorID, AuthorsPrefix)
	if err := validateID("author", authorID); err != nil {
		return AuthorRef{}, err
	}

	ctx, span := s.tracer.Start(ctx, "catalog.GetAuthor", trace.WithAttributes(attribute.String("author.id", authorID)))
	defer span.End()

	a, err := s.ol.GetAuthor(ctx, authorID)
	if err != nil {
		if errors.Is(err, openlibrary.ErrNotFound) {
			return AuthorRef{}, fmt.Errorf("%w: %s", ErrAuthorNotFound, authorID)
		}
		span.RecordError(err)
		return AuthorRef{}, upstreamErr(ctx, "get author", err)
	}

	ref, err := s.normalizeAuthor(ctx, authorID, a, ImageLarge)
	if err != nil {
		// Merged and deleted author records carry no name.
		return AuthorRef{}, fmt.Errorf("%w: %s", ErrAuthorNotFound, authorID)
	}
	return ref, nil
}
