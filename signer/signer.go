// Package signer abstracts the signing backends behind one capability
// interface. Every backend receives the raw unprefixed message text,
// applying the chain family's personal-message transform is the
// backend's job so the formatters stay chain-agnostic.
package signer

import "context"

// SignatureLength is the canonical r ‖ s ‖ v signature width.
const SignatureLength = 65

// Signer produces a chain-family signature over raw message text.
// SignMessage may block on a remote service, neither method retries
// internally, callers wrap their own timeout or retry policy.
type Signer interface {
	SignMessage(ctx context.Context, msg []byte) ([]byte, error)
	Address() (string, error)
}
