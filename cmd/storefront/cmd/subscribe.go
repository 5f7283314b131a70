package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-sync/internal/catalog"
)

func subscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe <email>",
		Short: "Subscribe an address to the newsletter",
		Long: "Load the listing page, fill in the newsletter form, and submit it.\n" +
			"The storefront's confirmation or rejection is printed.",
		Example: `  storefront subscribe shopper@example.com`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return openPage(ctx, "/products/", func(a *app, s *catalog.Session) error {
				if err := s.SetField(ctx, "email", args[0]); err != nil {
					return err
				}
				if err := s.Submit(ctx, a.cfg.Catalog.Selectors.NewsletterForm); err != nil {
					return err
				}
				return report(ctx, s, nil)
			})
		},
	}
}
