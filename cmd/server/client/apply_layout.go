package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-grid/internal/handlers/placement/v1alpha1"
)

var (
	layoutSession   string
	layoutFloorplan string
	layoutLayer     int
	layoutFillFloor bool
)

var applyLayoutCmd = &cobra.Command{
	Use:   "apply-layout",
	Short: "Place a floorplan into a session",
	RunE: func(_ *cobra.Command, _ []string) error {
		doc, err := os.ReadFile(layoutFloorplan) // #nosec G304 -- path comes from the command line
		if err != nil {
			return fmt.Errorf("failed to read floorplan: %w", err)
		}

		client, cleanup, err := createPlacementClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ApplyLayout(ctx, &v1alpha1.ApplyLayoutRequest{
			SessionID: layoutSession,
			Floorplan: doc,
			Layer:     layoutLayer,
			FillFloor: layoutFillFloor,
		})
		if err != nil {
			return requestError("apply layout", err)
		}

		if layoutFillFloor {
			fmt.Printf("Floor tiles placed %d, skipped %d\n", resp.FloorPlaced, resp.FloorSkipped)
		}
		fmt.Printf("Placed %d, failed %d\n", resp.Placed, resp.Failed)
		for _, p := range resp.Placements {
			status := "ok"
			if !p.Result.OK {
				status = p.Result.Reason
			}
			fmt.Printf("  %-20s %-16s %-8s %s\n", p.Name, p.TemplateID, p.Cell, status)
		}
		return nil
	},
}

func init() {
	applyLayoutCmd.Flags().StringVar(&layoutSession, "session", "", "Session ID (required)")
	applyLayoutCmd.Flags().StringVar(&layoutFloorplan, "floorplan", "", "Path to the floorplan JSON (required)")
	applyLayoutCmd.Flags().IntVar(&layoutLayer, "layer", 0, "Target layer")
	applyLayoutCmd.Flags().BoolVar(&layoutFillFloor, "fill-floor", false, "Tile the layer with the configured floor first")
	_ = applyLayoutCmd.MarkFlagRequired("session")   // nolint:errcheck // safe to ignore in init
	_ = applyLayoutCmd.MarkFlagRequired("floorplan") // nolint:errcheck // safe to ignore in init
}
