// Package transport holds the HTTP-facing request and response shapes for
// route generation, validated with go-playground/validator struct tags,
// and the conversions between them and the planner package's domain types.
package transport
