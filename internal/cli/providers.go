package cli

import (
	"fmt"
	"text/tabwriter"

	"builderhub-payments/internal/gateway"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(providersCmd)
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List mobile-money providers and whether credentials are configured",
	Args:  cobra.NoArgs,
	RunE:  runProviders,
}

func runProviders(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	d := gateway.NewDispatcher(gateway.OptionsFromConfig(cfg), nil, log)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMIN AMOUNT\tCONFIGURED\tENDPOINT")
	for _, p := range d.Providers() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%s\n", p.ID, p.Name, p.MinAmount, p.Configured, p.Endpoint)
	}
	return w.Flush()
}
