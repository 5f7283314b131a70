package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-sync/internal/catalog"
)

func cartCmd() *cobra.Command {
	cartRoot := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the shopping cart",
		Long: "Manage the cart of the current shopper session. Pass --cookies (or set\n" +
			"STOREFRONT_COOKIES) to act on an existing session; otherwise each\n" +
			"invocation starts a new one.",
	}

	cartRoot.AddCommand(
		cartShowCmd(),
		cartAddCmd(),
		cartRemoveCmd(),
		cartCountCmd(),
	)

	return cartRoot
}

func cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart lines and totals",
		Example: `  storefront cart show
  storefront cart show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return openPage(ctx, "/cart/", func(_ *app, s *catalog.Session) error {
				snap, err := s.Snapshot(ctx)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(snap)
				}
				return printCart(snap)
			})
		},
	}
}

func cartAddCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Example: `  storefront cart add 4
  storefront cart add 4 --quantity 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			resp, err := a.client.AddToCart(ctx, args[0], quantity)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if !resp.Success {
				return fmt.Errorf("%w: %s", errFailed, orDefault(resp.Error, a.cfg.Catalog.Messages.CartAddFailed))
			}
			fmt.Println(a.cfg.Catalog.Messages.CartAdded)
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "units to add")

	return cmd
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a line from the cart",
		Long: "Load the cart page, press the line's remove control, and print the\n" +
			"updated cart.",
		Example: `  storefront cart remove 12`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return openPage(ctx, "/cart/", func(a *app, s *catalog.Session) error {
				sel := fmt.Sprintf(`%s[data-cart-item-id=%q]`, a.cfg.Catalog.Selectors.RemoveFromCart, args[0])
				if err := s.Click(ctx, sel); err != nil {
					return fmt.Errorf("cart item %s: %w", args[0], err)
				}
				return report(ctx, s, printCart)
			})
		},
	}
}

func cartCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of units in the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			n, err := a.client.CartCount(ctx)
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

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
