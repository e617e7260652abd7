// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package verify

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/signdata"
)

var (
	VerifyCLI = &cobra.Command{
		Use:   "verify",
		Short: "Verify a sign-data bundle",
		Long: "CLI rebuilds the authorization message from the fields of a " +
			"commitment or withdrawal sign-data bundle and checks that message " +
			"and hashes still match",
		RunE: verify,
	}
)

var (
	file       string
	bundleType string
)

func init() {
	VerifyCLI.PersistentFlags().StringVar(&file, "file", "", "path to the sign-data bundle JSON")
	_ = VerifyCLI.MarkFlagRequired("file")
	VerifyCLI.PersistentFlags().StringVar(&bundleType, "type", "commitment", "bundle type (commitment or withdrawal)")
}

func verify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	formatter := signdata.NewFormatter(address.NewRegistry())
	switch bundleType {
	case "commitment":
		var sd signdata.CommitmentSignData
		if err := json.Unmarshal(data, &sd); err != nil {
			return err
		}

		if !formatter.VerifyCommitment(&sd) {
			return fmt.Errorf("bundle does not match its message")
		}
	case "withdrawal":
		var sd signdata.WithdrawalSignData
		if err := json.Unmarshal(data, &sd); err != nil {
			return err
		}

		if !formatter.VerifyWithdrawal(&sd) {
			return fmt.Errorf("bundle does not match its message")
		}
	default:
		return fmt.Errorf("type '%s' not recognized", bundleType)
	}

	fmt.Println("Bundle verified")
	return nil
}
