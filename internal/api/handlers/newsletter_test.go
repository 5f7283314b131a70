package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-sync/internal/api/handlers"
	"github.com/donaldgifford/storefront-sync/internal/storefront"
)

func TestNewsletterHandler_Subscribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		existing   string
		email      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "new address is subscribed",
			email:      "shopper@example.com",
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true}`,
		},
		{
			name:       "empty address is rejected",
			email:      "",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"Email is required"}`,
		},
		{
			name:       "malformed address is rejected",
			email:      "not-an-email",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"Enter a valid email address"}`,
		},
		{
			name:       "existing subscriber is rejected",
			existing:   "shopper@example.com",
			email:      "Shopper@Example.com",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"You are already subscribed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := storefront.New()
			if tt.existing != "" {
				require.NoError(t, s.Subscribe(tt.existing))
			}

			_, api := humatest.New(t)
			handlers.RegisterNewsletterRoutes(api, handlers.NewNewsletterHandler(s))

			resp := api.Post("/newsletters/subscribe/", map[string]any{"email": tt.email})
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.JSONEq(t, tt.wantBody, resp.Body.String())
		})
	}
}
