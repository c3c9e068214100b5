package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-grid/internal/handlers/placement/v1alpha1"
)

var (
	snapshotSession string
	snapshotID      string
)

var saveSnapshotCmd = &cobra.Command{
	Use:   "save-snapshot",
	Short: "Save a session's placements",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createPlacementClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.SaveSnapshot(ctx, &v1alpha1.SaveSnapshotRequest{SessionID: snapshotSession})
		if err != nil {
			return requestError("save snapshot", err)
		}

		fmt.Printf("Snapshot %s saved with %d placements\n", resp.SnapshotID, resp.Placements)
		return nil
	},
}

var loadSnapshotCmd = &cobra.Command{
	Use:   "load-snapshot",
	Short: "Restore a snapshot into a session",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createPlacementClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.LoadSnapshot(ctx, &v1alpha1.LoadSnapshotRequest{
			SessionID:  snapshotSession,
			SnapshotID: snapshotID,
		})
		if err != nil {
			return requestError("load snapshot", err)
		}

		printSession(resp.Session)
		if resp.Skipped > 0 {
			fmt.Printf("  Skipped: %d\n", resp.Skipped)
		}
		return nil
	},
}

func init() {
	saveSnapshotCmd.Flags().StringVar(&snapshotSession, "session", "", "Session ID (required)")
	_ = saveSnapshotCmd.MarkFlagRequired("session") // nolint:errcheck // safe to ignore in init

	loadSnapshotCmd.Flags().StringVar(&snapshotSession, "session", "", "Session ID (required)")
	loadSnapshotCmd.Flags().StringVar(&snapshotID, "snapshot", "", "Snapshot ID (required)")
	_ = loadSnapshotCmd.MarkFlagRequired("session")  // nolint:errcheck // safe to ignore in init
	_ = loadSnapshotCmd.MarkFlagRequired("snapshot") // nolint:errcheck // safe to ignore in init
}
