package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"example.com/solar-directory/app/internal/domain/filter"
	domview "example.com/solar-directory/app/internal/domain/view"
	"example.com/solar-directory/app/internal/infra/catalogapi"
	"example.com/solar-directory/app/internal/interface/cli"
	directoryuc "example.com/solar-directory/app/internal/usecase/directory"
)

type sourceFlags struct {
	entities   string
	categories string
	kind       string
	sort       string
	locale     string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.entities, "file", "f", "", "JSON file with the entity collection")
	cmd.Flags().StringVar(&f.categories, "categories", "", "JSON file with the category collection")
	cmd.Flags().StringVar(&f.kind, "kind", string(domview.KindCompanies), "entity kind (companies or products)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort order (name, rating, price_asc, price_desc)")
	cmd.Flags().StringVar(&f.locale, "locale", filter.DefaultLocale, "collation locale for name sorting")
	_ = cmd.MarkFlagRequired("file")
}

func (f *sourceFlags) source() catalogapi.FileSource {
	return catalogapi.FileSource{EntitiesPath: f.entities, CategoriesPath: f.categories}
}

func newFilterCmd(root *rootOptions) *cobra.Command {
	var (
		src    sourceFlags
		query  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter an exported catalog once and print the view",
		Example: `  solar-directory filter --file companies.json --query "state=SP&rating=4" --sort name
  solar-directory filter -f products.json --kind products --query "?max_price=1500" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domview.ParseKind(src.kind)
			if err != nil {
				return err
			}
			logger, err := root.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			fs := src.source()
			svc := directoryuc.NewService(fs, fs, src.locale, logger)
			res, err := svc.Browse(cmd.Context(), directoryuc.BrowseInput{
				Kind:  kind,
				State: filter.Decode(query),
				Sort:  filter.ParseSortBy(src.sort),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"kind":           res.Kind,
					"query":          res.Query,
					"data":           res.View.Items,
					"chips":          res.View.Chips,
					"location_index": res.View.LocationIndex,
					"fetch_failed":   res.FetchFailed,
				})
			}
			if err := cli.RenderView(out, res.View, res.FetchFailed); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "query: ?%s\n", res.Query)
			return err
		},
	}
	src.register(cmd)
	cmd.Flags().StringVarP(&query, "query", "q", "", "encoded filter state, e.g. state=SP&rating=4")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")
	return cmd
}
