// Package chat holds the client-side panels that talk to the assistant: a
// running conversation and an image generator. Each panel allows at most
// one request in flight.
package chat
