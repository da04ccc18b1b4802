package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"builderhub-payments/internal/service"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(feeCmd)
	feeCmd.Flags().Float64P("rate", "r", -1, "Platform fee rate (default payments.platform_fee_rate)")
}

var feeCmd = &cobra.Command{
	Use:   "fee AMOUNT",
	Short: "Compute the platform fee and total charged for a payment amount",
	Args:  cobra.ExactArgs(1),
	RunE:  runFee,
}

func runFee(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("amount must be a positive whole number of XOF, got %q", args[0])
	}

	rate, _ := cmd.Flags().GetFloat64("rate")
	if rate < 0 {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		rate = cfg.Payments.PlatformFeeRate
	}
	if rate >= 1 {
		return fmt.Errorf("rate must be in [0, 1), got %v", rate)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(service.ComputeFee(amount, rate))
}
