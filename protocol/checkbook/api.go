package checkbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/veilpay/veilpay-signing/signdata"
)

const (
	API_RETRIES           = 3
	API_RETRY_WAIT        = 500 * time.Millisecond
	ALLOCATION_PAGE_LIMIT = 100
)

type APIError struct {
	Code    int
	Err     string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("checkbook api error: status %d, error: %s, message: %s", e.Code, e.Err, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Err     string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type Signature struct {
	ChainID       uint32  `json:"chain_id"`
	SignatureData string  `json:"signature_data"`
	PublicKey     *string `json:"public_key,omitempty"`
}

// CommitmentSubmission carries a signed commitment authorization to the
// backend. Lang is the protocol wire code of the message language.
type CommitmentSubmission struct {
	DepositID     string                       `json:"deposit_id"`
	Allocations   []signdata.AllocationWithSeq `json:"allocations"`
	OwnerAddress  UniversalAddress             `json:"owner_address"`
	Signature     Signature                    `json:"signature"`
	TokenSymbol   string                       `json:"token_symbol"`
	TokenDecimals uint8                        `json:"token_decimals"`
	Lang          uint8                        `json:"lang"`
	Commitment    string                       `json:"commitment,omitempty"`
}

type CheckbookAPI struct {
	url        string
	HTTPClient *http.Client
}

func NewCheckbookAPI(url string) *CheckbookAPI {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = API_RETRIES - 1 // RetryMax is a number of retries after an initial attempt
	retryClient.RetryWaitMin = API_RETRY_WAIT
	retryClient.RetryWaitMax = API_RETRY_WAIT
	retryClient.Logger = nil

	return &CheckbookAPI{
		url:        strings.TrimSuffix(url, "/"),
		HTTPClient: retryClient.StandardClient(),
	}
}

// Checkbook fetches a checkbook together with its allocations. The
// checkbook commitment is joined into every returned allocation.
func (a *CheckbookAPI) Checkbook(ctx context.Context, id string) (*Checkbook, []Check, error) {
	url := fmt.Sprintf("%s/api/checkbooks/id/%s", a.url, id)
	body, err := a.get(ctx, url)
	if err != nil {
		return nil, nil, err
	}

	data := new(struct {
		Checkbook *Checkbook `json:"checkbook"`
		Checks    []Check    `json:"checks"`
	})
	if err := json.Unmarshal(body, data); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if data.Checkbook == nil {
		return nil, nil, fmt.Errorf("checkbook %s not found", id)
	}

	if data.Checkbook.Commitment != nil {
		for i := range data.Checks {
			data.Checks[i].Commitment = *data.Checkbook.Commitment
		}
	}

	return data.Checkbook, data.Checks, nil
}

// Allocation fetches a single allocation by ID.
func (a *CheckbookAPI) Allocation(ctx context.Context, id string) (*signdata.Allocation, error) {
	url := fmt.Sprintf("%s/api/allocations/%s", a.url, id)
	body, err := a.get(ctx, url)
	if err != nil {
		return nil, err
	}

	data := new(struct {
		Allocation *Check `json:"allocation"`
	})
	if err := json.Unmarshal(body, data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if data.Allocation == nil {
		return nil, fmt.Errorf("allocation %s not found", id)
	}

	return data.Allocation.Allocation(), nil
}

// Allocations lists one page of allocations with the given status. The
// list endpoint responds without the usual envelope.
func (a *CheckbookAPI) Allocations(ctx context.Context, status signdata.AllocationStatus, page int) ([]Check, *Pagination, error) {
	url := fmt.Sprintf("%s/api/allocations?status=%s&page=%d&limit=%d", a.url, status, page, ALLOCATION_PAGE_LIMIT)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	s := new(struct {
		Data       []Check     `json:"data"`
		Pagination *Pagination `json:"pagination"`
	})
	if err := json.Unmarshal(body, s); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return s.Data, s.Pagination, nil
}

// SubmitCommitment delivers a signed commitment authorization to the
// backend. The backend verifies the signature against the rendered
// message, binds the commitment to the checkbook and creates its
// allocations.
func (a *CheckbookAPI) SubmitCommitment(ctx context.Context, submission *CommitmentSubmission) error {
	b, err := json.Marshal(submission)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/commitments/submit", a.url)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = a.do(req)
	return err
}

func (a *CheckbookAPI) get(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	return a.do(req)
}

// do executes the request and unwraps the response envelope. Backend
// errors are surfaced as APIError when the envelope carries one.
func (a *CheckbookAPI) do(req *http.Request) (json.RawMessage, error) {
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	e := new(envelope)
	if err := json.Unmarshal(body, e); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, req.URL.String())
		}

		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !e.Success {
		if e.Err != "" {
			return nil, &APIError{Code: resp.StatusCode, Err: e.Err, Message: e.Message}
		}

		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, req.URL.String())
	}

	return e.Data, nil
}
