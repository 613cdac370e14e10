/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abkGami/star-damm-honorary-fee/domain/config"
	"github.com/abkGami/star-damm-honorary-fee/domain/util"
	"github.com/abkGami/star-damm-honorary-fee/infrastructure/manifest"
	"github.com/abkGami/star-damm-honorary-fee/interface/exporter"
	"github.com/abkGami/star-damm-honorary-fee/usecase"
)

// crankCmd runs a single distribute() page against the configured vault and
// exits. 'start' calls the same logic on a ticker.
var crankCmd = &cobra.Command{
	Use:   "crank",
	Short: "Runs a single distribution page against the configured vault",
	Long: `crank claims fees (if the daily window is due) and pays out the next
page of the investor cohort, then exits. Run it directly for one-shot
operation, or use 'start' to run it on a ticker.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()
		runCrankCycle()
	},
}

func init() {
	rootCmd.AddCommand(crankCmd)
}

func runCrankCycle() {
	exporter.IncCrankCycle()

	cohort, err := manifest.LoadCohort(config.GetCohortManifestPath())
	if err != nil {
		fmt.Printf("🔴 loading cohort manifest - %v\n", err.Error())
		exporter.IncErrorCount()
		return
	}

	vault := config.GetVault()
	progress, err := progressRepository.Find(vault)
	if err != nil {
		fmt.Printf("🔴 loading progress for vault %v - %v\n", vault, err.Error())
		exporter.IncErrorCount()
		return
	}

	pageSize := uint64(config.GetPageSize())
	cohortSize := uint64(len(cohort))

	// A due window is opened against the full cohort in one call, no
	// matter the configured page size: distribute() requires the opening
	// page to see every entry so it can total locked amounts correctly,
	// and it always starts that page at index 0. ExpectedCursor still
	// carries the stored cursor (from the prior day's close) — distribute()
	// validates against it before resetting it to zero once the window
	// opens. A continuation page (window already open) resumes from the
	// stored cursor instead.
	pageStart, pageEnd := progress.Cursor, progress.Cursor+pageSize
	if usecase.Due(*progress, time.Now().Unix()) {
		pageStart, pageEnd = 0, cohortSize
	}
	if pageEnd > cohortSize {
		pageEnd = cohortSize
	}
	if pageStart > cohortSize {
		pageStart = cohortSize
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := distributionInteractor.Distribute(ctx, usecase.DistributePageParams{
		Vault:          vault,
		Position:       config.GetPosition(),
		Pairs:          cohort[pageStart:pageEnd],
		ExpectedCursor: progress.Cursor,
		CohortSize:     cohortSize,
		Now:            time.Now(),
	})
	if err != nil {
		fmt.Printf("🔴 distribute() failed for vault %v - %v\n", vault, err.Error())
		exporter.IncErrorCount()
		return
	}

	if result.WindowOpened {
		refreshed, err := progressRepository.Find(vault)
		if err == nil {
			exporter.AddClaimed(refreshed.ClaimedThisWindow)
		}
	}
	exporter.AddDistributed(result.PageTotal)
	if result.DayClosed {
		exporter.AddCreatorPaid(result.CreatorAmount)
		exporter.IncDaysClosed()
	}

	fmt.Printf("✅ page applied for vault %v - investors_paid=%d page_total=%v day_closed=%v\n",
		util.ShortAddress(vault), result.InvestorsPaid, util.QuoteAmountString(result.PageTotal), result.DayClosed)
	if result.DayClosed {
		fmt.Printf("   creator paid %v\n", util.QuoteAmountString(result.CreatorAmount))
	}
}
