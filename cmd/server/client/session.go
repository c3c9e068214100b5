package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-grid/internal/handlers/placement/v1alpha1"
)

var (
	sessionID   string
	showObjects bool
)

var createSessionCmd = &cobra.Command{
	Use:   "create-session",
	Short: "Start a building session",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createPlacementClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.CreateSession(ctx, &v1alpha1.CreateSessionRequest{})
		if err != nil {
			return requestError("create session", err)
		}

		printSession(resp.Session)
		return nil
	},
}

var getSessionCmd = &cobra.Command{
	Use:   "get-session",
	Short: "Show a building session",
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createPlacementClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.GetSession(ctx, &v1alpha1.GetSessionRequest{SessionID: sessionID})
		if err != nil {
			return requestError("get session", err)
		}

		if showObjects {
			return printJSON(resp.Session)
		}
		printSession(resp.Session)
		return nil
	},
}

func init() {
	getSessionCmd.Flags().StringVar(&sessionID, "session", "", "Session ID (required)")
	getSessionCmd.Flags().BoolVar(&showObjects, "objects", false, "Print the full session including objects")
	_ = getSessionCmd.MarkFlagRequired("session") // nolint:errcheck // safe to ignore in init
}
