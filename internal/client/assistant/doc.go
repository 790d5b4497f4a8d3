// Package assistant talks to the generative-AI provider.
//
// A Provider does the raw calls and reports failures as errors. Service
// wraps a Provider with the contract the UI relies on: AnswerQuery always
// returns text, using FallbackAnswer when the provider fails, and
// GenerateImage reports failure as (nil, false). Neither adds timeouts or
// retries. A call runs until the provider returns or ctx is cancelled.
package assistant
