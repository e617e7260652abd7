package signdata

// VerifyCommitment rebuilds the canonical message from the bundle's
// stored fields and reports whether message and hash still match.
func (f *Formatter) VerifyCommitment(sd *CommitmentSignData) bool {
	rebuilt, err := f.PrepareCommitment(CommitmentInput{
		Allocations: sd.Allocations,
		DepositID:   sd.DepositID,
		TokenID:     sd.TokenID,
		TokenSymbol: sd.TokenSymbol,
		ChainID:     sd.ChainID,
		Owner:       sd.Owner,
		Lang:        sd.Lang,
		ChainName:   sd.ChainName,
	})
	if err != nil {
		return false
	}

	return rebuilt.Message == sd.Message && rebuilt.MessageHash == sd.MessageHash
}

// VerifyWithdrawal is the withdrawal counterpart of VerifyCommitment,
// additionally checking the derived nullifier.
func (f *Formatter) VerifyWithdrawal(sd *WithdrawalSignData) bool {
	rebuilt, err := f.PrepareWithdrawal(WithdrawalInput{
		Allocations: sd.Allocations,
		Intent:      sd.Intent,
		TokenSymbol: sd.TokenSymbol,
		Lang:        sd.Lang,
		ChainName:   sd.ChainName,
	})
	if err != nil {
		return false
	}

	return rebuilt.Message == sd.Message &&
		rebuilt.MessageHash == sd.MessageHash &&
		rebuilt.Nullifier == sd.Nullifier
}
