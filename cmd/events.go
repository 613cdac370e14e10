/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abkGami/star-damm-honorary-fee/domain/config"
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Lists the recorded lifecycle events for the configured vault",
	Long: `events prints every HonoraryPositionInitialized, QuoteFeesClaimed,
InvestorPayoutPage and CreatorPayoutDayClosed event recorded for the
configured vault, oldest first, for operator inspection and audit.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		vault := config.GetVault()
		events, err := eventRepository.FindAllForVault(vault)
		if err != nil {
			fmt.Printf("🔴 loading events for vault %v - %v\n", vault, err.Error())
			return
		}

		if len(events) == 0 {
			fmt.Printf("no events recorded for vault %v\n", vault)
			return
		}

		for _, event := range events {
			fmt.Printf("%-28s %s\n", event.Kind, event.Payload)
		}
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
