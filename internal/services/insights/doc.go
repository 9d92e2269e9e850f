// Package insights generates coaching content for exercises and section
// overviews through an OpenRouter-style JSON chat-completion API.
//
// The client retries transient failures (HTTP 408/429/5xx, network
// timeouts) with exponential backoff and honors Retry-After. Context
// cancellation is observed before and during every attempt and is never
// retried. Payloads are decoded tolerantly: code fences and prose around
// the JSON object are stripped before unmarshalling.
package insights
