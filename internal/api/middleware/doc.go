// Package middleware provides the Echo middleware stack of the reference
// storefront: request logging, panic recovery, metrics, shopper sessions
// and the anti-forgery check.
package middleware
