// Package main is the entry point for the deck builder gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/deckbuilder-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "deckbuilder",
	Short: "Deck builder gRPC server",
	Long:  `Deck builder provides a gRPC interface for composing decks and three-deck teams.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
