// Package client provides test commands for the placement gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/handlers/placement/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the placement service",
	Long:  `Client commands drive a running server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Session commands
	ClientCmd.AddCommand(createSessionCmd)
	ClientCmd.AddCommand(getSessionCmd)

	// Building commands
	ClientCmd.AddCommand(placeCmd)
	ClientCmd.AddCommand(applyLayoutCmd)

	// Snapshot commands
	ClientCmd.AddCommand(saveSnapshotCmd)
	ClientCmd.AddCommand(loadSnapshotCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createPlacementClient creates a placement service client
func createPlacementClient() (v1alpha1.PlacementServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewPlacementServiceClient(conn), cleanup, nil
}

// requestError reports a failed call with the server's error code
func requestError(action string, err error) error {
	return fmt.Errorf("failed to %s: %w", action, errors.FromGRPCError(err))
}

func printSession(s *v1alpha1.Session) {
	if s == nil {
		return
	}
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("  State: %s\n", s.State)
	if s.TemplateID != "" {
		fmt.Printf("  Selected: %s (%s)\n", s.TemplateID, s.Orientation)
	}
	fmt.Printf("  Layer: %d of %d (%dx%d)\n", s.ActiveLayer, s.LayerCount, s.Width, s.Depth)
	fmt.Printf("  Objects: %d\n", len(s.Objects))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
