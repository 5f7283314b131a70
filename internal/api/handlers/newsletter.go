package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-playground/validator/v10"

	"github.com/donaldgifford/storefront-sync/internal/storefront"
	domain "github.com/donaldgifford/storefront-sync/pkg/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Subscriber records newsletter subscriptions.
type Subscriber interface {
	Subscribe(email string) error
}

// NewsletterHandler serves the newsletter subscription endpoint.
type NewsletterHandler struct {
	store Subscriber
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(s Subscriber) *NewsletterHandler {
	return &NewsletterHandler{store: s}
}

// SubscribeInput is the request body for a subscription. The address is
// checked by the handler so every rejection uses the storefront's failure
// body.
type SubscribeInput struct {
	Body struct {
		Email string `json:"email,omitempty" doc:"Address to subscribe" example:"shopper@example.com"`
	}
}

// SubscribeOutput reports whether the address was subscribed.
type SubscribeOutput struct {
	Status int
	Body   domain.SubscribeResponse
}

// Subscribe adds an address to the newsletter.
func (h *NewsletterHandler) Subscribe(_ context.Context, in *SubscribeInput) (*SubscribeOutput, error) {
	out := &SubscribeOutput{Status: http.StatusOK}

	if msg := emailProblem(in.Body.Email); msg != "" {
		out.Status = http.StatusBadRequest
		out.Body.Error = msg
		return out, nil
	}

	err := h.store.Subscribe(in.Body.Email)
	switch {
	case errors.Is(err, storefront.ErrAlreadySubscribed):
		out.Status = http.StatusBadRequest
		out.Body.Error = "You are already subscribed"
	case err != nil:
		return nil, huma.Error500InternalServerError("subscribing: " + err.Error())
	default:
		out.Body.Success = true
	}
	return out, nil
}

func emailProblem(email string) string {
	err := validate.Var(email, "required,email")
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
		return "Email is required"
	}
	return "Enter a valid email address"
}

// RegisterNewsletterRoutes registers the subscription endpoint with the
// Huma API.
func RegisterNewsletterRoutes(api huma.API, h *NewsletterHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "newsletter-subscribe",
		Method:      http.MethodPost,
		Path:        "/newsletters/subscribe/",
		Summary:     "Subscribe to the newsletter",
		Description: "Adds an email address to the newsletter. Duplicate and invalid addresses are rejected with a message.",
		Tags:        []string{"newsletter"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Subscribe)
}
