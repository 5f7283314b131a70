package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-sync/internal/catalog"
)

func wishlistCmd() *cobra.Command {
	wishRoot := &cobra.Command{
		Use:     "wishlist",
		Aliases: []string{"favorites"},
		Short:   "Show and change favorites",
	}

	wishRoot.AddCommand(
		wishlistShowCmd(),
		wishlistToggleCmd(),
		wishlistCountCmd(),
	)

	return wishRoot
}

func wishlistShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List favorite products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return openPage(ctx, cfg.Catalog.WishlistPath, func(_ *app, s *catalog.Session) error {
				snap, err := s.Snapshot(ctx)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(snap.Products)
				}
				return printFavorites(snap)
			})
		},
	}
}

func wishlistToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <product-id>",
		Short: "Add a product to favorites, or remove it",
		Example: `  storefront wishlist toggle 4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			resp, err := a.client.ToggleWishlist(ctx, args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if !resp.Status.Valid() {
				return fmt.Errorf("%w: %s", errFailed, orDefault(resp.Error, a.cfg.Catalog.Messages.WishlistFailed))
			}
			fmt.Println(resp.Status)
			return nil
		},
	}
}

func wishlistCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of favorite products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			n, err := a.client.WishlistCount(ctx)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]int{"count": n})
			}
			fmt.Println(n)
			return nil
		},
	}
}
