/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/abkGami/star-damm-honorary-fee/domain"
	"github.com/abkGami/star-damm-honorary-fee/domain/config"
	"github.com/abkGami/star-damm-honorary-fee/domain/util"
	"github.com/abkGami/star-damm-honorary-fee/usecase"
)

var (
	initInvestorShareBps uint16
	initDailyCap         uint64
	initMinPayout        uint64
	initY0               uint64
	initQuoteAsset       string
	initCreatorAccount   string
	initBaseAssetHint    string
)

// initCmd represents the one-time initialize command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Registers a vault's fee-distribution policy",
	Long: `init validates and persists the immutable distribution policy for a
vault's honorary position, and creates its zeroed progress record. It is
run once per vault, before the first crank cycle.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		quoteAsset, err := solana.PublicKeyFromBase58(initQuoteAsset)
		if err != nil {
			fmt.Printf("🔴 invalid --quote-asset - %v\n", err.Error())
			return
		}
		creatorAccount, err := solana.PublicKeyFromBase58(initCreatorAccount)
		if err != nil {
			fmt.Printf("🔴 invalid --creator-account - %v\n", err.Error())
			return
		}
		baseAssetHint, err := solana.PublicKeyFromBase58(initBaseAssetHint)
		if err != nil {
			fmt.Printf("🔴 invalid --base-asset-hint - %v\n", err.Error())
			return
		}

		vault := config.GetVault()
		programID := config.GetProgramID()

		_, policyBump, err := domain.PolicyPDA(vault, programID)
		if err != nil {
			fmt.Printf("🔴 deriving policy PDA - %v\n", err.Error())
			return
		}
		_, progressBump, err := domain.ProgressPDA(vault, programID)
		if err != nil {
			fmt.Printf("🔴 deriving progress PDA - %v\n", err.Error())
			return
		}

		err = policyInteractor.Initialize(usecase.InitializeParams{
			Vault:            vault,
			InvestorShareBps: initInvestorShareBps,
			DailyCap:         initDailyCap,
			MinPayout:        initMinPayout,
			Y0:               initY0,
			QuoteAsset:       quoteAsset,
			CreatorAccount:   creatorAccount,
			BaseAssetHint:    baseAssetHint,
			Position:         config.GetPosition(),
			PolicyBump:       policyBump,
			ProgressBump:     progressBump,
			Now:              time.Now().Unix(),
		})
		if err != nil {
			fmt.Printf("🔴 init failed for vault %v - %v\n", vault, err.Error())
			return
		}

		fmt.Printf("✅ policy registered for vault %v - investor share up to %v, y0 %v\n",
			vault, util.BpsString(initInvestorShareBps), util.QuoteAmountString(initY0))
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Uint16Var(&initInvestorShareBps, "investor-share-bps", 0, "maximum investor share, in basis points")
	initCmd.Flags().Uint64Var(&initDailyCap, "daily-cap", 0, "daily payout cap in quote-asset base units (0 = uncapped)")
	initCmd.Flags().Uint64Var(&initMinPayout, "min-payout", 0, "minimum payout threshold in quote-asset base units")
	initCmd.Flags().Uint64Var(&initY0, "y0", 0, "total investor allocation minted at TGE, in quote-asset base units")
	initCmd.Flags().StringVar(&initQuoteAsset, "quote-asset", "", "quote-asset mint address")
	initCmd.Flags().StringVar(&initCreatorAccount, "creator-account", "", "creator's quote-asset token account")
	initCmd.Flags().StringVar(&initBaseAssetHint, "base-asset-hint", "", "pool's base-asset mint, used for the quote-only preflight check")

	initCmd.MarkFlagRequired("investor-share-bps")
	initCmd.MarkFlagRequired("y0")
	initCmd.MarkFlagRequired("quote-asset")
	initCmd.MarkFlagRequired("creator-account")
	initCmd.MarkFlagRequired("base-asset-hint")
}
