package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"bookbrowser/internal/platform/openlibrary"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// maxWorkRedirects bounds how many merged-work hops GetWorkDetail follows.
const maxWorkRedirects = 1

// result carries one enrichment outcome to assembly time.
type result[T any] struct {
	val T
	err error
}

// GetWorkDetail fetches a work and enriches it with its primary author, its
// rating summary and related works. Only the work fetch can fail the call;
// enrichment failures degrade to nil or empty values.
func (s *Service) GetWorkDetail(ctx context.Context, workID string) (WorkDetail, error) {
	workID = NormalizeID(workID, WorksPrefix)
	if err := validateID("work", workID); err != nil {
		return WorkDetail{}, err
	}

	start := time.Now()
	defer func() { s.metrics.ObserveAggregate(time.Since(start)) }()

	ctx, span := s.tracer.Start(ctx, "catalog.GetWorkDetail", trace.WithAttributes(attribute.String("work.id", workID)))
	defer span.End()

	work, id, err := s.fetchWork(ctx, workID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "work fetch failed")
		return WorkDetail{}, err
	}

	detail := s.normalizeWork(ctx, id, work)

	authorID, err := PrimaryAuthorRef(work.Authors)
	if err != nil {
		s.degraded(ctx, "work_detail", "author", err)
	}

	// The work record is the only data dependency; the enrichment fetches
	// run side by side and never cancel each other.
	var (
		author  result[*AuthorRef]
		rating  result[*float64]
		related result[[]WorkSummary]
		g       errgroup.Group
	)
	if authorID != "" {
		g.Go(func() error {
			author.val, author.err = s.fetchAuthorRef(ctx, authorID)
			return nil
		})
	}
	g.Go(func() error {
		rating.val, rating.err = s.fetchRating(ctx, id)
		return nil
	})
	if len(detail.Subjects) > 0 {
		g.Go(func() error {
			related.val, related.err = s.fetchRecommendations(ctx, id, detail.Subjects[0])
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return WorkDetail{}, err
	}

	if author.err != nil {
		s.degraded(ctx, "work_detail", "author", author.err)
	} else {
		detail.Author = author.val
	}
	if rating.err != nil {
		s.degraded(ctx, "work_detail", "rating", rating.err)
	} else {
		detail.RatingAverage = rating.val
	}
	if related.err != nil {
		s.degraded(ctx, "work_detail", "recommendations", related.err)
	} else if related.val != nil {
		detail.Recommendations = related.val
	}

	return detail, nil
}

// fetchWork loads the work record, following a merged-work redirect. It
// returns the record and the id it was finally found under.
func (s *Service) fetchWork(ctx context.Context, workID string) (*openlibrary.Work, string, error) {
	for hop := 0; hop <= maxWorkRedirects; hop++ {
		work, err := s.ol.GetWork(ctx, workID)
		if err != nil {
			if errors.Is(err, openlibrary.ErrNotFound) {
				return nil, "", fmt.Errorf("%w: %s", ErrWorkNotFound, workID)
			}
			return nil, "", upstreamErr(ctx, "get work", err)
		}

		switch work.Type.Key {
		case openlibrary.TypeDelete:
			return nil, "", fmt.Errorf("%w: %s was deleted", ErrWorkNotFound, workID)
		case openlibrary.TypeRedirect:
			next := NormalizeID(work.Location, WorksPrefix)
			if next == "" || next == workID {
				return nil, "", fmt.Errorf("%w: %s redirects nowhere", ErrWorkNotFound, workID)
			}
			s.logger.DebugContext(ctx, "following work redirect", "from", workID, "to", next)
			workID = next
			continue
		}

		if strings.TrimSpace(work.Title) == "" {
			return nil, "", fmt.Errorf("%w: work %s has no title", ErrUpstream, workID)
		}
		if key := NormalizeID(work.Key, WorksPrefix); key != "" {
			workID = key
		}
		return work, workID, nil
	}
	return nil, "", fmt.Errorf("%w: %s: too many redirects", ErrWorkNotFound, workID)
}

func (s *Service) normalizeWork(ctx context.Context, id string, work *openlibrary.Work) WorkDetail {
	detail := WorkDetail{
		ID:              id,
		Title:           strings.TrimSpace(work.Title),
		Subjects:        []string{},
		Recommendations: []WorkSummary{},
	}

	desc, err := NormalizeDescription(work.Description)
	if err != nil {
		s.degraded(ctx, "work_detail", "description", err)
		desc = NoDescription
	}
	detail.Description = desc

	if subjects, err := NormalizeSubjects(work.Subjects); err != nil {
		s.degraded(ctx, "work_detail", "subjects", err)
	} else {
		detail.Subjects = subjects
	}

	coverID, err := FirstImageID(work.Covers)
	if err != nil {
		s.degraded(ctx, "work_detail", "cover", err)
	}
	detail.CoverImageURL = NormalizeCoverRef(coverID, ImageLarge)

	year, err := NormalizeYear(work.FirstPublishDate)
	if err != nil {
		s.degraded(ctx, "work_detail", "first_publish_year", err)
	}
	detail.FirstPublishYear = year

	return detail
}

func (s *Service) fetchAuthorRef(ctx context.Context, authorID string) (*AuthorRef, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.fetchAuthor")
	defer span.End()

	a, err := s.ol.GetAuthor(ctx, authorID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	ref, err := s.normalizeAuthor(ctx, authorID, a, ImageMedium)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// normalizeAuthor builds an AuthorRef. A malformed photo only drops the photo.
func (s *Service) normalizeAuthor(ctx context.Context, authorID string, a *openlibrary.Author, size ImageSize) (AuthorRef, error) {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = strings.TrimSpace(a.PersonalName)
	}
	if name == "" {
		return AuthorRef{}, &ShapeError{Field: "author.name", Raw: authorID}
	}
	if key := NormalizeID(a.Key, AuthorsPrefix); key != "" {
		authorID = key
	}

	photoID, err := FirstImageID(a.Photos)
	if err != nil {
		s.degraded(ctx, "author", "photo", err)
	}
	return AuthorRef{ID: authorID, Name: name, PhotoURL: NormalizePhotoRef(photoID, size)}, nil
}

func (s *Service) fetchRating(ctx context.Context, workID string) (*float64, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.fetchRating")
	defer span.End()

	res, err := s.ol.GetWorkRatings(ctx, workID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return NormalizeRating(res.Summary.Average)
}

// fetchRecommendations lists other works sharing the work's first subject.
func (s *Service) fetchRecommendations(ctx context.Context, workID, subject string) ([]WorkSummary, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.fetchRecommendations", trace.WithAttributes(attribute.String("subject", subject)))
	defer span.End()

	// One extra in case the work itself is listed.
	res, err := s.ol.GetSubjectWorks(ctx, subject, s.cfg.RecommendationLimit+1)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	out := make([]WorkSummary, 0, s.cfg.RecommendationLimit)
	for _, raw := range res.Works {
		if len(out) == s.cfg.RecommendationLimit {
			break
		}
		var w openlibrary.SubjectWork
		if err := json.Unmarshal(raw, &w); err != nil {
			s.degraded(ctx, "recommendations", "entry", err)
			continue
		}
		summary, ok, err := normalizeSummary(w.Key, w.Title, w.CoverID, ImageMedium)
		if !ok {
			s.degraded(ctx, "recommendations", "entry", fmt.Errorf("entry %q has no usable id or title", w.Key))
			continue
		}
		if err != nil {
			s.degraded(ctx, "recommendations", "cover", err)
		}
		if summary.ID == workID {
			continue
		}
		out = append(out, summary)
	}
	return out, nil
}

func validateID(kind, id string) error {
	if id == "" || strings.ContainsAny(id, "/?#") || strings.ContainsFunc(id, unicode.IsSpace) {
		return fmt.Errorf("%w: %s id %q is not a catalog identifier", ErrInvalidArgument, kind, id)
	}
	return nil
}
