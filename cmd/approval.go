package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nofrixion/moneymoov-go/libs/approvals"
	errorutils "github.com/nofrixion/moneymoov-go/libs/errors"
	"github.com/nofrixion/moneymoov-go/libs/logging"
	"github.com/nofrixion/moneymoov-go/payouts"
	"github.com/nofrixion/moneymoov-go/payruns"
	"github.com/nofrixion/moneymoov-go/sweeps"
	"github.com/nofrixion/moneymoov-go/tokens"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ApprovalHashCmd computes the approval hash of an entity document
var ApprovalHashCmd = &cobra.Command{
	Use:   "approval-hash",
	Short: "compute the approval hash over an entity's critical fields",
	Run:   Perform("approval hash", RunApprovalHash),
}

func init() {
	RootCmd.AddCommand(ApprovalHashCmd)

	ApprovalHashCmd.Flags().String("type", "", "the entity type (payrun, payout, sweeprule, token)")
	Must(viper.BindPFlag("type", ApprovalHashCmd.Flags().Lookup("type")))

	ApprovalHashCmd.Flags().String("entity", "-", "path to the entity json document, - for stdin")
	Must(viper.BindPFlag("entity", ApprovalHashCmd.Flags().Lookup("entity")))
}

func decodeApprovable(entityType string, raw []byte) (approvals.Approvable, error) {
	var (
		entity approvals.Approvable
		err    error
	)
	switch approvals.EntityType(entityType) {
	case approvals.EntityTypePayRun:
		var v payruns.PayRun
		err = json.Unmarshal(raw, &v)
		entity = &v
	case approvals.EntityTypePayout:
		var v payouts.Payout
		err = json.Unmarshal(raw, &v)
		entity = &v
	case approvals.EntityTypeSweepRule:
		var v sweeps.Rule
		err = json.Unmarshal(raw, &v)
		entity = &v
	case approvals.EntityTypeToken:
		var v tokens.Token
		err = json.Unmarshal(raw, &v)
		entity = &v
	default:
		return nil, errorutils.New(nil, fmt.Sprintf("unknown entity type %q", entityType), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", entityType, err)
	}
	return entity, nil
}

// RunApprovalHash runs the approval-hash command
func RunApprovalHash(cmd *cobra.Command, args []string) error {
	path := viper.GetString("entity")
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read entity document: %w", err)
	}

	entity, err := decodeApprovable(viper.GetString("type"), raw)
	if err != nil {
		return err
	}

	hash := approvals.ComputeHash(entity)
	logging.AddApprovalHashToContext(cmd.Context(), hash)

	fmt.Println(hash)
	return nil
}
