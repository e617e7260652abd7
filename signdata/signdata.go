// Package signdata builds the canonical authorization bundles users
// sign. Message construction is deterministic down to the byte, the
// remote verifier recomputes every hash independently and any drift in
// ordering, rounding or text formatting invalidates the signature.
package signdata

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/veilpay/veilpay-signing/address"
)

// displayDecimals is the fixed scale applied to amounts rendered inside
// messages.
const displayDecimals = 18

// AllocationStatus tracks an allocation through the withdrawal
// lifecycle.
type AllocationStatus string

const (
	StatusIdle    AllocationStatus = "idle"
	StatusPending AllocationStatus = "pending"
	StatusUsed    AllocationStatus = "used"
)

// AllocationWithSeq is one allocation leg of a commitment request.
// Amounts stay in their decimal string form until hashing so the exact
// client-supplied value is what gets validated and rendered.
type AllocationWithSeq struct {
	Seq    uint8  `json:"seq"`
	Amount string `json:"amount"`
}

// Allocation is the richer withdrawal-time record mirrored from the
// backend. The commitment digest is zero until the backend binds it.
type Allocation struct {
	ID          string           `json:"id"`
	Seq         uint8            `json:"seq"`
	Amount      string           `json:"amount"`
	Commitment  common.Hash      `json:"commitment"`
	TokenID     uint16           `json:"tokenId"`
	CheckbookID string           `json:"checkbookId"`
	Status      AllocationStatus `json:"status"`
}

// Formatter canonicalizes inputs into sign-data bundles. All methods are
// pure and safe for concurrent use.
type Formatter struct {
	registry *address.Registry
}

func NewFormatter(registry *address.Registry) *Formatter {
	return &Formatter{
		registry: registry,
	}
}

func (f *Formatter) chainName(override string, chainID uint32) string {
	if override != "" {
		return override
	}

	return f.registry.Name(chainID)
}
