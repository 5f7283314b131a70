package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-sync/internal/catalog"
)

// openPage starts a page session on path and hands it to fn.
func openPage(ctx context.Context, path string, fn func(*app, *catalog.Session) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	s, err := catalog.Open(ctx, a.client, path, a.cfg.Session(a.log))
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer s.Close()

	return fn(a, s)
}

func browseCmd() *cobra.Command {
	var (
		categories []string
		brands     []string
		minPrice   float64
		maxPrice   float64
		search     string
		page       int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List catalog products",
		Long: "Load the product listing with the given filters applied and print the\n" +
			"products shown, the pagination, and the header badges.",
		Example: `  storefront browse
  storefront browse --category 2 --brand 1 --max-price 500
  storefront browse --search phone --page 2 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var q catalog.FilterQuery
			for _, c := range categories {
				q.Add("category", c)
			}
			for _, b := range brands {
				q.Add("brand", b)
			}
			if cmd.Flags().Changed("min-price") {
				q.Add("min_price", strconv.FormatFloat(minPrice, 'f', -1, 64))
			}
			if cmd.Flags().Changed("max-price") {
				q.Add("max_price", strconv.FormatFloat(maxPrice, 'f', -1, 64))
			}
			q.Add("q", search)
			q = q.WithPage(page)

			path := "/products/"
			if !q.IsZero() {
				path += "?" + q.Encode()
			}

			ctx := cmd.Context()
			return openPage(ctx, path, func(_ *app, s *catalog.Session) error {
				snap, err := s.Snapshot(ctx)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(snap)
				}
				return printCatalog(snap)
			})
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "category ID (repeatable)")
	cmd.Flags().StringSliceVar(&brands, "brand", nil, "brand ID (repeatable)")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum list price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum list price")
	cmd.Flags().StringVar(&search, "search", "", "product name search")
	cmd.Flags().IntVar(&page, "page", 1, "listing page")

	return cmd
}
