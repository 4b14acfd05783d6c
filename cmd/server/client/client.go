// Package client provides commands that exercise the deck builder gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/deckbuilder-api/internal/handlers/deckbuilder/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the deck builder",
	Long:  `Client commands make real gRPC requests against a running deck builder server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Deck commands
	ClientCmd.AddCommand(createDeckCmd)
	ClientCmd.AddCommand(getDeckCmd)
	ClientCmd.AddCommand(quickAddCmd)
	ClientCmd.AddCommand(validateDeckCmd)

	// Team commands
	ClientCmd.AddCommand(createTeamCmd)
	ClientCmd.AddCommand(dropCmd)
}

// createClient dials the server with the JSON codec
func createClient() (*v1alpha1.DeckBuilderServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		v1alpha1.ClientCodecOption(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewDeckBuilderServiceClient(conn), cleanup, nil
}
