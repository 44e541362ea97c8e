package config

import (
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"bookbrowser/internal/httpx"

	"github.com/joho/godotenv"
)

// Config is everything cmd/api and cmd/catalog read from the environment.
type Config struct {
	Addr string

	OpenLibraryBaseURL   string
	OpenLibraryUserAgent string
	OpenLibraryRPS       float64
	OpenLibraryRetries   int
	OpenLibraryTimeout   time.Duration

	SearchLimit         int
	RecommendationLimit int
	AuthorWorksLimit    int

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	TrustedProxies     []netip.Prefix
	EnableHSTS         bool

	LogLevel slog.Level
}

// LoadEnvFiles reads .env then .env.local. Variables already set in the
// process environment are never overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// FromEnv parses the process environment. Unset variables take their
// defaults; malformed ones are an error naming the variable.
func FromEnv() (Config, error) {
	p := &parser{}
	cfg := Config{
		Addr:                 getEnv("APP_ADDR", ":8080"),
		OpenLibraryBaseURL:   getEnv("OPENLIBRARY_BASE_URL", "https://openlibrary.org"),
		OpenLibraryUserAgent: getEnv("OPENLIBRARY_USER_AGENT", "bookbrowser/1.0 (+https://github.com/bookbrowser)"),
		OpenLibraryRPS:       p.getFloat("OPENLIBRARY_RPS", 5),
		OpenLibraryRetries:   p.getInt("OPENLIBRARY_MAX_RETRIES", 0),
		OpenLibraryTimeout:   p.getDuration("OPENLIBRARY_TIMEOUT", 10*time.Second),
		SearchLimit:          p.getInt("SEARCH_LIMIT", 20),
		RecommendationLimit:  p.getInt("RECOMMENDATION_LIMIT", 8),
		AuthorWorksLimit:     p.getInt("AUTHOR_WORKS_LIMIT", 50),
		CORSAllowedOrigins:   splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitRPS:         p.getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:       p.getInt("RATE_LIMIT_BURST", 20),
		EnableHSTS:           p.getBool("ENABLE_HSTS", false),
		LogLevel:             p.getLevel("LOG_LEVEL", slog.LevelInfo),
	}
	if p.err != nil {
		return Config{}, p.err
	}
	trusted, err := httpx.ParseTrustedProxies(getEnv("TRUSTED_PROXIES", ""))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	cfg.TrustedProxies = trusted

	if cfg.OpenLibraryRetries < 0 {
		return Config{}, fmt.Errorf("OPENLIBRARY_MAX_RETRIES must not be negative, got %d", cfg.OpenLibraryRetries)
	}
	if cfg.SearchLimit <= 0 || cfg.SearchLimit > 100 {
		return Config{}, fmt.Errorf("SEARCH_LIMIT must be between 1 and 100, got %d", cfg.SearchLimit)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parser keeps the first conversion error so FromEnv reads top to bottom.
type parser struct {
	err error
}

func (p *parser) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != "" && p.err == nil
}

func (p *parser) fail(key, v string, err error) {
	p.err = fmt.Errorf("invalid %s=%q: %w", key, v, err)
}

func (p *parser) getInt(key string, def int) int {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return n
}

func (p *parser) getFloat(key string, def float64) float64 {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return f
}

func (p *parser) getBool(key string, def bool) bool {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return b
}

func (p *parser) getDuration(key string, def time.Duration) time.Duration {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}

func (p *parser) getLevel(key string, def slog.Level) slog.Level {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		p.fail(key, v, err)
		return def
	}
	return l
}
