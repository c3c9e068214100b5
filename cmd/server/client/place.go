package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/handlers/placement/v1alpha1"
)

var (
	placeSession  string
	placeTemplate string
	placeX        int
	placeZ        int
	placeEdge     string
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Place a template at a cell",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createPlacementClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Place(ctx, &v1alpha1.PlaceRequest{
			SessionID:  placeSession,
			TemplateID: placeTemplate,
			Target: &v1alpha1.Target{
				Cell: &entities.Coord{X: placeX, Z: placeZ},
				Edge: placeEdge,
			},
		})
		if err != nil {
			return requestError("place", err)
		}

		res := resp.Result
		if !res.OK {
			fmt.Printf("Placement refused: %s\n", res.Reason)
			if res.Cell != nil {
				fmt.Printf("  Cell: %s\n", res.Cell)
			}
			if res.NeighborID != "" {
				fmt.Printf("  Neighbor: %s (rule %s)\n", res.NeighborID, res.RuleID)
			}
			return nil
		}

		fmt.Printf("Placed %s as %s on layer %d\n", res.Object.TemplateID, res.Object.ID, res.Layer)
		for _, removed := range res.Removed {
			fmt.Printf("  Replaced %s\n", removed.ID)
		}
		return nil
	},
}

func init() {
	placeCmd.Flags().StringVar(&placeSession, "session", "", "Session ID (required)")
	placeCmd.Flags().StringVar(&placeTemplate, "template", "", "Template ID (defaults to the selection)")
	placeCmd.Flags().IntVar(&placeX, "x", 0, "Cell X")
	placeCmd.Flags().IntVar(&placeZ, "z", 0, "Cell Z")
	placeCmd.Flags().StringVar(&placeEdge, "edge", "", "Edge slot for walls (up, down, left, right)")
	_ = placeCmd.MarkFlagRequired("session") // nolint:errcheck // safe to ignore in init
}
