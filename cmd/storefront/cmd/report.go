package cmd

import (
	"context"

	"github.com/donaldgifford/storefront-sync/internal/catalog"
)

// report prints the toasts a gesture raised, then the page through print,
// and fails if any toast was a failure.
func report(ctx context.Context, s *catalog.Session, print func(*catalog.Snapshot) error) error {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	msgs := s.Messages()

	if jsonOutput() {
		if err := outputJSON(struct {
			Messages any               `json:"messages"`
			Page     *catalog.Snapshot `json:"page"`
		}{msgs, snap}); err != nil {
			return err
		}
		return failure(msgs)
	}

	if err := printMessages(msgs); err != nil {
		return err
	}
	if print != nil {
		if err := print(snap); err != nil {
			return err
		}
	}
	return failure(msgs)
}
