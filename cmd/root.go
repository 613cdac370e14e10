/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crank",
	Short: "Permissionless crank for the honorary-position fee-distribution engine",
	Long: `crank drives the fee-distribution state machine for a vault's honorary
liquidity position: it claims quote-asset fees once per 24h window and pays
them pro-rata to the investor cohort according to how much of their
allocation is still vesting.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (not read: configuration is always loaded from ./config.yaml)")
}
