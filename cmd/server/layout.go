package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-grid/internal/layout"
)

var (
	layoutConfigPath  string
	layoutCatalogPath string
	floorplanPath     string
	layoutWidth       int
	layoutDepth       int
	layoutJSON        bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Resolve a floorplan offline",
	Long:  `Resolve a floorplan JSON document against the template catalog and print the cell each item lands on.`,
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&layoutConfigPath, "config", "", "Path to a YAML config file")
	layoutCmd.Flags().StringVar(&layoutCatalogPath, "catalog", "", "Path to the template catalog (overrides config)")
	layoutCmd.Flags().StringVar(&floorplanPath, "floorplan", "", "Path to the floorplan JSON (required)")
	layoutCmd.Flags().IntVar(&layoutWidth, "width", 0, "Grid width in cells (overrides config)")
	layoutCmd.Flags().IntVar(&layoutDepth, "depth", 0, "Grid depth in cells (overrides config)")
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "Print resolved items as JSON")
	_ = layoutCmd.MarkFlagRequired("floorplan") // nolint:errcheck // safe to ignore in init
}

// resolvedItem is the printable form of a resolved floorplan item
type resolvedItem struct {
	Name               string `json:"name"`
	Key                string `json:"key"`
	Template           string `json:"template,omitempty"`
	Size               string `json:"size"`
	Target             string `json:"target"`
	Cell               string `json:"cell"`
	Facing             string `json:"facing"`
	Rank               int    `json:"rank"`
	TemplateUnresolved bool   `json:"template_unresolved,omitempty"`
	SearchExhausted    bool   `json:"search_exhausted,omitempty"`
}

func runLayout(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(layoutConfigPath, layoutCatalogPath)
	if err != nil {
		return err
	}
	if layoutWidth > 0 {
		cfg.Grid.Width = layoutWidth
	}
	if layoutDepth > 0 {
		cfg.Grid.Depth = layoutDepth
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	f, err := os.Open(floorplanPath) // #nosec G304 -- path comes from the command line
	if err != nil {
		return fmt.Errorf("failed to open floorplan: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	fp, err := layout.ParseFloorplan(f)
	if err != nil {
		return err
	}

	resolver, err := layout.NewResolver(&layout.Config{Lookup: cat})
	if err != nil {
		return err
	}
	out, err := resolver.Resolve(&layout.ResolveInput{
		Items:      fp.Items(),
		GridWidth:  cfg.Grid.Width,
		GridDepth:  cfg.Grid.Depth,
		PageWidth:  fp.PageWidth,
		PageHeight: fp.PageHeight,
	})
	if err != nil {
		return err
	}

	items := make([]resolvedItem, len(out.Items))
	for i, r := range out.Items {
		items[i] = resolvedItem{
			Name:               r.Name,
			Key:                r.Key,
			Size:               fmt.Sprintf("%dx%d", r.Width, r.Height),
			Target:             r.Target.String(),
			Cell:               r.Cell.String(),
			Facing:             r.Facing.String(),
			Rank:               r.Rank,
			TemplateUnresolved: r.TemplateUnresolved,
			SearchExhausted:    r.SearchExhausted,
		}
		if r.Template != nil {
			items[i].Template = r.Template.ID
		}
	}

	if layoutJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RANK\tNAME\tTEMPLATE\tSIZE\tTARGET\tCELL\tFACING\tNOTES\n")
	for _, it := range items {
		notes := ""
		switch {
		case it.TemplateUnresolved:
			notes = "template unresolved"
		case it.SearchExhausted:
			notes = "search exhausted"
		}
		template := it.Template
		if template == "" {
			template = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			it.Rank, it.Name, template, it.Size, it.Target, it.Cell, it.Facing, notes)
	}
	return w.Flush()
}
