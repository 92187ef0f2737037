// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, response digests,
// HTTP response writing, HTTP client initialization, and other common
// operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientIPCtxKey is the key used to store the requesting client's IP address
// in the context. Used together with GetClientIPFromContext for type-safe
// retrieval of the address from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClientIPCtxKey, "203.0.113.7")
var ClientIPCtxKey = contextKey("clientIP")

// GetClientIPFromContext retrieves the client IP address from the context.
//
// Returns the address as a string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	clientIP, ok := utils.GetClientIPFromContext(ctx)
//	if !ok {
//	    // handle missing client address in context
//	}
func GetClientIPFromContext(ctx context.Context) (string, bool) {
	clientIP, ok := ctx.Value(ClientIPCtxKey).(string)
	return clientIP, ok
}
