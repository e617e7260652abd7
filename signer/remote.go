package signer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/veilpay/veilpay-signing/errs"
)

// RemoteSigner delegates both operations to a custodial signing service
// over HTTP. The service applies the personal-message transform itself,
// the raw text is forwarded untouched. Nothing is cached, callers that
// want a stable address snapshot keep their own copy.
type RemoteSigner struct {
	HTTPClient *http.Client

	url   string
	keyID string
}

func NewRemoteSigner(url string, keyID string) *RemoteSigner {
	return &RemoteSigner{
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		url:   url,
		keyID: keyID,
	}
}

type remoteSignRequest struct {
	KeyID   string `json:"keyId"`
	Message string `json:"message"`
}

type remoteSignResponse struct {
	Signature string `json:"signature"`
}

type remoteAddressResponse struct {
	Address string `json:"address"`
}

func (s *RemoteSigner) SignMessage(ctx context.Context, msg []byte) ([]byte, error) {
	body, err := json.Marshal(remoteSignRequest{
		KeyID:   s.keyID,
		Message: hexutil.Encode(msg),
	})
	if err != nil {
		return nil, errs.NewSignerError("remote", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/sign", s.url), bytes.NewReader(body))
	if err != nil {
		return nil, errs.NewSignerError("remote", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp remoteSignResponse
	if err := s.do(req, &resp); err != nil {
		return nil, err
	}

	sig, err := hexutil.Decode(resp.Signature)
	if err != nil {
		return nil, errs.NewSignerError("remote", fmt.Errorf("malformed signature: %w", err))
	}
	if len(sig) != SignatureLength {
		return nil, errs.NewSignerError("remote", fmt.Errorf("signature has %d bytes, expected %d", len(sig), SignatureLength))
	}

	return sig, nil
}

func (s *RemoteSigner) Address() (string, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/v1/keys/%s/address", s.url, s.keyID), nil)
	if err != nil {
		return "", errs.NewSignerError("remote", err)
	}

	var resp remoteAddressResponse
	if err := s.do(req, &resp); err != nil {
		return "", err
	}
	if resp.Address == "" {
		return "", errs.NewSignerError("remote", errs.ErrNoAddress)
	}

	return resp.Address, nil
}

func (s *RemoteSigner) do(req *http.Request, out any) error {
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return errs.NewSignerError("remote", fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.NewSignerError("remote", fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, req.URL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewSignerError("remote", fmt.Errorf("failed to read response body: %w", err))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errs.NewSignerError("remote", fmt.Errorf("failed to unmarshal JSON: %w", err))
	}

	return nil
}
