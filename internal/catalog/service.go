package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bookbrowser/internal/platform/metrics"
	"bookbrowser/internal/platform/openlibrary"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=service.go -destination=mock_client_test.go -package=catalog

// OpenLibraryClient is the subset of the catalog API the service reads.
type OpenLibraryClient interface {
	GetWork(ctx context.Context, workID string) (*openlibrary.Work, error)
	GetAuthor(ctx context.Context, authorID string) (*openlibrary.Author, error)
	GetAuthorWorks(ctx context.Context, authorID string, limit int) (*openlibrary.AuthorWorksResponse, error)
	SearchWorks(ctx context.Context, query string, limit int) (*openlibrary.SearchResponse, error)
	SearchAuthors(ctx context.Context, query string, limit int) (*openlibrary.AuthorSearchResponse, error)
	GetSubjectWorks(ctx context.Context, subject string, limit int) (*openlibrary.SubjectResponse, error)
	GetWorkRatings(ctx context.Context, workID string) (*openlibrary.RatingsResponse, error)
}

type Config struct {
	SearchLimit         int
	RecommendationLimit int
	AuthorWorksLimit    int
}

func (c Config) withDefaults() Config {
	if c.SearchLimit <= 0 {
		c.SearchLimit = 20
	}
	if c.RecommendationLimit <= 0 {
		c.RecommendationLimit = 8
	}
	if c.AuthorWorksLimit <= 0 {
		c.AuthorWorksLimit = 50
	}
	return c
}

// Service searches the catalog and assembles normalized views of its records.
type Service struct {
	ol      OpenLibraryClient
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// NewService creates a catalog service. logger and m may be nil.
func NewService(ol OpenLibraryClient, cfg Config, logger *slog.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ol:      ol,
		cfg:     cfg.withDefaults(),
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer("bookbrowser/internal/catalog"),
	}
}

// upstreamErr maps a client failure on a primary fetch. Cancellation is
// passed through untouched so callers can tell it from an outage.
func upstreamErr(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}

// degraded logs and counts a value replaced by its default. Shape problems
// are routine catalog noise and log at debug; failed fetches log at warn.
func (s *Service) degraded(ctx context.Context, op, field string, err error) {
	s.metrics.IncDegraded(op, field)
	level := slog.LevelWarn
	var shape *ShapeError
	if errors.As(err, &shape) {
		level = slog.LevelDebug
	}
	s.logger.Log(ctx, level, "catalog value degraded to default", "op", op, "field", field, "error", err)
}
