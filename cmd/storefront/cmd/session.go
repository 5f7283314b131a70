package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start a shopper session and print its cookies",
		Long: "Load the storefront once and print the session cookies it issued.\n" +
			"Export them so later commands act on the same cart and favorites.",
		Example: `  export STOREFRONT_COOKIES="$(storefront session)"
  storefront cart add 4 && storefront cart show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			if _, err := a.client.LoadPage(ctx, "/products/"); err != nil {
				return err
			}
			if _, ok := a.client.CSRFToken(); !ok {
				a.log.Warn("storefront did not issue an anti-forgery cookie; actions may be rejected")
			}
			if jsonOutput() {
				return outputJSON(map[string]string{"cookies": a.client.CookieHeader()})
			}
			fmt.Println(a.client.CookieHeader())
			return nil
		},
	}
}
