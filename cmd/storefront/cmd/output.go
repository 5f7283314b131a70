package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/donaldgifford/storefront-sync/internal/catalog"
	"github.com/donaldgifford/storefront-sync/internal/notify"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printBadges(tw *tabWriter, snap *catalog.Snapshot) {
	tw.writef("Cart:\t%s\n", snap.CartCount)
	tw.writef("Favorites:\t%s\n", snap.WishlistCount)
}

func printCatalog(snap *catalog.Snapshot) error {
	tw := newTabWriter(os.Stdout)
	if len(snap.Products) == 0 {
		tw.writef("No products match these filters.\n")
	} else {
		tw.writef("ID\tNAME\tPRICE\tFAVORITE\n")
		for i := range snap.Products {
			p := &snap.Products[i]
			tw.writef("%s\t%s\t%s\t%v\n", p.ID, truncate(p.Name, 40), p.Price, p.InWishlist)
		}
	}
	tw.writef("\nPage:\t%d of %d\n", max(snap.CurrentPage(), 1), max(len(snap.Pages), 1))
	printBadges(tw, snap)
	return tw.finish()
}

func printCart(snap *catalog.Snapshot) error {
	tw := newTabWriter(os.Stdout)
	if len(snap.CartRows) == 0 {
		tw.writef("Your cart is empty.\n")
		return tw.finish()
	}
	tw.writef("ITEM\tNAME\tTOTAL\n")
	for _, r := range snap.CartRows {
		tw.writef("%s\t%s\t%s\n", r.ItemID, truncate(r.Name, 40), r.Total)
	}
	tw.writef("\nTotal:\t%s\n", snap.CartTotal)
	tw.writef("Quantity:\t%s\n", snap.CartQuantity)
	return tw.finish()
}

func printFavorites(snap *catalog.Snapshot) error {
	tw := newTabWriter(os.Stdout)
	if len(snap.Products) == 0 {
		tw.writef("You have no favorites yet.\n")
		return tw.finish()
	}
	tw.writef("ID\tNAME\tPRICE\n")
	for i := range snap.Products {
		p := &snap.Products[i]
		tw.writef("%s\t%s\t%s\n", p.ID, truncate(p.Name, 40), p.Price)
	}
	return tw.finish()
}

func printMessages(msgs []notify.Message) error {
	tw := newTabWriter(os.Stdout)
	for _, m := range msgs {
		tw.writef("[%s]\t%s\n", m.Severity, m.Text)
	}
	return tw.finish()
}

// errFailed marks a command whose gesture raised a danger toast.
var errFailed = errors.New("storefront reported a failure")

func failure(msgs []notify.Message) error {
	for _, m := range msgs {
		if m.Severity == notify.SeverityDanger {
			return fmt.Errorf("%w: %s", errFailed, m.Text)
		}
	}
	return nil
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
