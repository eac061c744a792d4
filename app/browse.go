package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"example.com/solar-directory/app/internal/config"
	"example.com/solar-directory/app/internal/domain/filter"
	domview "example.com/solar-directory/app/internal/domain/view"
	"example.com/solar-directory/app/internal/infra/statefile"
	"example.com/solar-directory/app/internal/interface/cli"
	directoryuc "example.com/solar-directory/app/internal/usecase/directory"
)

const newViewID = "new"

func newBrowseCmd(root *rootOptions) *cobra.Command {
	var (
		src        sourceFlags
		configPath string
		stateFile  string
		viewID     string
		window     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively filter an exported catalog",
		Long: `Reads one command per line from stdin (type "help" for the list). The
filter state is persisted to --state-file after each quiet period and is
restored on the next run. With --view the state is also kept in a saved view
in Postgres, so it can be opened through the API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domview.ParseKind(src.kind)
			if err != nil {
				return err
			}
			if viewID != "" && viewID != newViewID {
				if _, err := uuid.Parse(viewID); err != nil {
					return fmt.Errorf("--view must be a UUID or %q", newViewID)
				}
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := root.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			writer := statefile.NewWriter(stateFile)
			saved, err := writer.Read()
			if err != nil {
				return fmt.Errorf("read state file: %w", err)
			}
			persisters := []directoryuc.Persister{writer}

			if viewID != "" {
				repo, closeViews, err := openViewStore(ctx, cfg.Postgres.DSN)
				if err != nil {
					return err
				}
				defer closeViews()

				views := newViewService(cfg, repo, logger)
				if viewID == newViewID {
					viewID = ""
				} else {
					res, err := views.Get(ctx, viewID)
					switch {
					case err == nil:
						saved, kind = res.Query, res.Kind
					case !errors.Is(err, domview.ErrViewNotFound):
						return err
					}
				}
				sp := views.SessionPersister(viewID, kind)
				persisters = append(persisters, sp)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "saved view %s\n", sp.ID()); err != nil {
					return err
				}
			}

			fs := src.source()
			svc := directoryuc.NewService(fs, fs, src.locale, logger)
			sess, err := svc.NewSession(ctx, directoryuc.SessionOptions{
				Kind:      kind,
				Initial:   filter.Decode(saved),
				Sort:      filter.ParseSortBy(src.sort),
				Persister: fanOut(persisters...),
				Window:    debounceWindow(cmd.Flags().Changed("debounce"), window, cfg),
			})
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := cli.NewShell(sess, cmd.OutOrStdout()).Run(ctx, cmd.InOrStdin()); err != nil {
				return err
			}
			sess.Flush()
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&stateFile, "state-file", ".solar-directory-state", "file the filter state is persisted to")
	cmd.Flags().StringVar(&viewID, "view", "", `saved view id to keep up to date, or "new"`)
	cmd.Flags().DurationVar(&window, "debounce", config.Default().Filter.Debounce, "quiet period before the state is persisted (default from filter.debounce)")
	return cmd
}

// debounceWindow prefers an explicit --debounce over the configured window.
func debounceWindow(flagSet bool, flag time.Duration, cfg *config.Config) time.Duration {
	if flagSet {
		return flag
	}
	return cfg.Filter.Debounce
}

// fanOut persists to every target. All targets are tried; their errors are
// joined.
func fanOut(targets ...directoryuc.Persister) directoryuc.Persister {
	return directoryuc.PersisterFunc(func(ctx context.Context, query string) error {
		var errs []error
		for _, p := range targets {
			if err := p.Persist(ctx, query); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
