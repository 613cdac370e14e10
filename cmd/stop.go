/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stops the running crank ticker",
	Long:  `Stops the crank ticker started previously by the 'start' command.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stop called.")

		// send a value to the 'quit' channel, defined in 'start' command file.
		quit <- true
		close(quit)
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
