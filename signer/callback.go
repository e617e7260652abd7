package signer

import (
	"context"

	"github.com/veilpay/veilpay-signing/errs"
)

// SignFunc produces a signature over raw message text.
type SignFunc func(ctx context.Context, msg []byte) ([]byte, error)

// CallbackSigner delegates signing to a caller-supplied function, used
// when key custody lives outside the process. The display address must
// be supplied out-of-band, a callback cannot derive one.
type CallbackSigner struct {
	sign    SignFunc
	address string
}

func NewCallbackSigner(sign SignFunc, address string) *CallbackSigner {
	return &CallbackSigner{
		sign:    sign,
		address: address,
	}
}

func (s *CallbackSigner) SignMessage(ctx context.Context, msg []byte) ([]byte, error) {
	sig, err := s.sign(ctx, msg)
	if err != nil {
		return nil, errs.NewSignerError("callback", err)
	}

	return sig, nil
}

func (s *CallbackSigner) Address() (string, error) {
	if s.address == "" {
		return "", errs.NewSignerError("callback", errs.ErrNoAddress)
	}

	return s.address, nil
}
