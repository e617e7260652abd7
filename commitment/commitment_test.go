package commitment_test

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/commitment"
)

type CommitmentTestSuite struct {
	suite.Suite

	registry *address.Registry
	owner    address.UniversalAddress
}

func TestRunCommitmentTestSuite(t *testing.T) {
	suite.Run(t, new(CommitmentTestSuite))
}

func (s *CommitmentTestSuite) SetupTest() {
	s.registry = address.NewRegistry()

	owner, err := address.New(s.registry, 714, "0x8731d54e9d02c286767d56ac03e8037c07e01e98")
	s.Nil(err)
	s.owner = owner
}

func (s *CommitmentTestSuite) Test_Commitment_MatchesPreimageLayout() {
	depositID := commitment.DepositIDFromNumber(1)
	allocations := []commitment.Allocation{
		{Seq: 0, Amount: big.NewInt(5)},
		{Seq: 1, Amount: big.NewInt(7)},
	}

	var preimage bytes.Buffer
	preimage.Write(depositID[:])
	s.Nil(binary.Write(&preimage, binary.BigEndian, uint32(714)))
	preimage.Write(crypto.Keccak256([]byte("USDT")))
	s.Nil(binary.Write(&preimage, binary.BigEndian, s.owner.ChainID))
	preimage.Write(s.owner.Data[:])
	for _, a := range allocations {
		leaf := make([]byte, 33)
		leaf[0] = a.Seq
		a.Amount.FillBytes(leaf[1:])
		preimage.Write(crypto.Keccak256(leaf))
	}

	expected := crypto.Keccak256Hash(preimage.Bytes())
	s.Equal(expected, commitment.Commitment(depositID, 714, "USDT", s.owner, allocations))
}

func (s *CommitmentTestSuite) Test_Commitment_SensitiveToEveryField() {
	depositID := commitment.DepositIDFromNumber(1)
	allocations := []commitment.Allocation{
		{Seq: 0, Amount: big.NewInt(5)},
	}

	base := commitment.Commitment(depositID, 714, "USDT", s.owner, allocations)

	otherOwner, err := address.New(s.registry, 714, "0x28c6c06298d514db089934071355e5743bf21d60")
	s.Nil(err)

	s.NotEqual(base, commitment.Commitment(commitment.DepositIDFromNumber(2), 714, "USDT", s.owner, allocations))
	s.NotEqual(base, commitment.Commitment(depositID, 60, "USDT", s.owner, allocations))
	s.NotEqual(base, commitment.Commitment(depositID, 714, "USDC", s.owner, allocations))
	s.NotEqual(base, commitment.Commitment(depositID, 714, "USDT", otherOwner, allocations))
	s.NotEqual(base, commitment.Commitment(depositID, 714, "USDT", s.owner, []commitment.Allocation{
		{Seq: 0, Amount: big.NewInt(6)},
	}))
	s.NotEqual(base, commitment.Commitment(depositID, 714, "USDT", s.owner, []commitment.Allocation{
		{Seq: 1, Amount: big.NewInt(5)},
	}))
}

func (s *CommitmentTestSuite) Test_Commitment_SensitiveToAllocationOrder() {
	depositID := commitment.DepositIDFromNumber(1)
	first := commitment.Allocation{Seq: 0, Amount: big.NewInt(5)}
	second := commitment.Allocation{Seq: 1, Amount: big.NewInt(7)}

	s.NotEqual(
		commitment.Commitment(depositID, 714, "USDT", s.owner, []commitment.Allocation{first, second}),
		commitment.Commitment(depositID, 714, "USDT", s.owner, []commitment.Allocation{second, first}),
	)
}

func (s *CommitmentTestSuite) Test_Nullifier_MatchesPreimageLayout() {
	c := commitment.Commitment(commitment.DepositIDFromNumber(1), 714, "USDT", s.owner, []commitment.Allocation{
		{Seq: 0, Amount: big.NewInt(5)},
	})
	amt, ok := new(big.Int).SetString("5000000000000000000", 10)
	s.True(ok)

	preimage := make([]byte, 0, 65)
	preimage = append(preimage, c[:]...)
	preimage = append(preimage, 1)
	encoded := make([]byte, 32)
	amt.FillBytes(encoded)
	preimage = append(preimage, encoded...)

	s.Equal(crypto.Keccak256Hash(preimage), commitment.Nullifier(c, 1, amt))
	s.NotEqual(commitment.Nullifier(c, 0, amt), commitment.Nullifier(c, 1, amt))
}
