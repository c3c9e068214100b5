// Package main is the entry point for the grid building server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-grid/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-grid",
	Short: "Grid building and layout server",
	Long: `rpg-grid places objects on stacked building grids, validates adjacency
constraints and maps floorplan documents onto grid cells.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
