package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"bookbrowser/internal/catalog"
	"bookbrowser/internal/config"
	"bookbrowser/internal/platform/openlibrary"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type app struct {
	output  string
	baseURL string
	svc     *catalog.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Query the Open Library catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "json", "output format: json or yaml")
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "catalog base URL (overrides OPENLIBRARY_BASE_URL)")

	root.AddCommand(a.newSearchCmd())
	root.AddCommand(a.newWorkCmd())
	root.AddCommand(a.newAuthorCmd())
	root.AddCommand(a.newWorksCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if a.output != "json" && a.output != "yaml" {
		return fmt.Errorf("unknown output format %q (want json or yaml)", a.output)
	}
	config.LoadEnvFiles()
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if a.baseURL != "" {
		cfg.OpenLibraryBaseURL = a.baseURL
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	client := openlibrary.NewClient(openlibrary.Config{
		BaseURL:    cfg.OpenLibraryBaseURL,
		UserAgent:  cfg.OpenLibraryUserAgent,
		RPS:        cfg.OpenLibraryRPS,
		MaxRetries: cfg.OpenLibraryRetries,
		Timeout:    cfg.OpenLibraryTimeout,
	})
	a.svc = catalog.NewService(client, catalog.Config{
		SearchLimit:         cfg.SearchLimit,
		RecommendationLimit: cfg.RecommendationLimit,
		AuthorWorksLimit:    cfg.AuthorWorksLimit,
	}, logger, nil)
	return nil
}

func (a *app) print(w io.Writer, v any) error {
	return render(w, a.output, v)
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
