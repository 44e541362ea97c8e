package main

import (
	"strings"

	"bookbrowser/internal/catalog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) newSearchCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search works by title or authors by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := catalog.ParseSearchKind(kind)
			if err != nil {
				return err
			}
			hits, err := a.svc.Search(cmd.Context(), strings.Join(args, " "), k)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), hits)
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", string(catalog.KindTitle), "title or author")
	return cmd
}

func (a *app) newWorkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "work <id>",
		Short: "Show a work with its author, rating and related works",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.svc.GetWorkDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), detail)
		},
	}
}

func (a *app) newAuthorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "author <id>",
		Short: "Show an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			author, err := a.svc.GetAuthor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), author)
		},
	}
}

type authorWorks struct {
	Author *catalog.AuthorRef    `json:"author,omitempty" yaml:"author,omitempty"`
	Works  []catalog.WorkSummary `json:"works" yaml:"works"`
}

func (a *app) newWorksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "works <author-id>",
		Short: "List an author's works",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out authorWorks
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				if author, err := a.svc.GetAuthor(ctx, args[0]); err == nil {
					out.Author = &author
				}
				return nil
			})
			g.Go(func() error {
				works, err := a.svc.GetAuthorWorks(ctx, args[0])
				out.Works = works
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), out)
		},
	}
}
