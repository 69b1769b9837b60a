// Package provider abstracts the generative model that turns a strategy
// prompt into a recommendation text.
package provider

import "context"

// ModelProvider is a single configured generative model. Generate makes
// exactly one attempt; callers decide what a failure means and there is no
// retry or backoff underneath.
type ModelProvider interface {
	ID() string
	Enabled() bool
	Generate(ctx context.Context, prompt string) (string, error)
}
