package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-petr/mcba-ledger/internal/billpayservice"
	"github.com/go-petr/mcba-ledger/internal/scheduler"
	"github.com/go-petr/mcba-ledger/internal/transferservice"
)

// Process-due flags
var processAt string

var billPayCmd = &cobra.Command{
	Use:   "billpay",
	Short: "Manage scheduled bill payments",
}

var processDueCmd = &cobra.Command{
	Use:   "process-due",
	Short: "Run one bill payment cycle and exit",
	Long: `Run one bill payment cycle and print its counts as JSON.

Examples:
  mcba billpay process-due
  mcba billpay process-due --at 2024-02-29T09:00:00Z`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, store, closeStore, err := setup()
		if err != nil {
			return err
		}
		defer closeLogged(logger, closeStore)

		opts := []scheduler.Option{}

		if processAt != "" {
			at, err := time.Parse(time.RFC3339, processAt)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}

			opts = append(opts, scheduler.WithClock(func() time.Time { return at.UTC() }))
		}

		billPays := billpayservice.New(store, store, transferservice.New(store))

		counts, err := scheduler.New(billPays, opts...).RunOnce(logger.WithContext(cmd.Context()))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(counts)
	},
}

func init() {
	processDueCmd.Flags().StringVar(&processAt, "at", "", "Process as of this RFC3339 time instead of now")

	billPayCmd.AddCommand(processDueCmd)
}
