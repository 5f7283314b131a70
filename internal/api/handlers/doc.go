// Package handlers implements the storefront's HTTP handlers: the JSON
// endpoints the synchronizer calls, the HTML pages it attaches to, and the
// health probes.
package handlers

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
