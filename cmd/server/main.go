// Package main is the entry point for the character wizard server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-character-wizard/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-wizard",
	Short: "D&D 5e character creation wizard",
	Long:  `rpg-wizard serves the step-by-step character creation wizard over HTTP and ships a client to drive it.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
