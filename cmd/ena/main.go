// Command ena derives artificial and natural flow series from a
// measured streamflow dataset, converts them into natural affluent
// energy and aggregates the result by a grouping dimension.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hydrosphere/enaflow"
	"github.com/hydrosphere/enaflow/series"
)

func main() {
	// A .env file can supply default table paths; missing is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}

	if err := rootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	var (
		flowsPath        string
		productivityPath string
		hydrographPath   string
		groupingsPath    string
		dimension        string
		flowsOut         string
		enaOut           string
		groupedOut       string
	)

	cmd := &cobra.Command{
		Use:   "ena",
		Short: "Derive flow series and compute natural affluent energy",
		Long: `ena reads a measured daily flow dataset plus the productivity,
hydrograph and grouping reference tables, reconstructs the derived
artificial and natural series for the seven configured basins, converts
all flows into natural affluent energy and sums the energy per group.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flowsPath, productivityPath, hydrographPath, groupingsPath,
				dimension, flowsOut, enaOut, groupedOut)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&flowsPath, "flows", envOr("ENA_FLOWS", "flows.csv"), "measured flow dataset (CSV)")
	flags.StringVar(&productivityPath, "productivity", envOr("ENA_PRODUCTIVITY", "productivity.toml"), "productivity table (TOML)")
	flags.StringVar(&hydrographPath, "hydrograph", envOr("ENA_HYDROGRAPH", "hydrograph.toml"), "Belo Monte hydrograph (TOML)")
	flags.StringVar(&groupingsPath, "groupings", envOr("ENA_GROUPINGS", "groupings.toml"), "grouping tables (TOML)")
	flags.StringVar(&dimension, "dimension", "subsystem", "grouping dimension to aggregate by")
	flags.StringVar(&flowsOut, "out-flows", "", "write the augmented flow table to this CSV file")
	flags.StringVar(&enaOut, "out-ena", "", "write the per-station ENA table to this CSV file")
	flags.StringVar(&groupedOut, "out-grouped", "-", "write the grouped ENA to this CSV file, - for stdout")

	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(flowsPath, productivityPath, hydrographPath, groupingsPath, dimension, flowsOut, enaOut, groupedOut string) error {
	f, err := os.Open(flowsPath)
	if err != nil {
		return err
	}
	defer f.Close()

	flows, err := enaflow.ReadFlowsCSV(f)
	if err != nil {
		return fmt.Errorf("%s: %w", flowsPath, err)
	}
	log.Printf("Loaded %d days of measured flows for %d stations\n", flows.Len(), len(flows.Codes()))

	productivity, err := enaflow.LoadProductivity(productivityPath)
	if err != nil {
		return err
	}
	hydrograph, err := enaflow.LoadHydrograph(hydrographPath)
	if err != nil {
		return err
	}
	groupings, err := enaflow.LoadGroupings(groupingsPath)
	if err != nil {
		return err
	}
	log.Printf("Grouping dimensions available: %v\n", groupings.Names())

	calc, err := enaflow.NewCalculator(flows, productivity, groupings, hydrograph)
	if err != nil {
		return err
	}

	augmented, err := calc.AugmentedFlows()
	if err != nil {
		return err
	}
	log.Printf("Derived %d series, %d stations total\n", len(augmented.Codes())-len(flows.Codes()), len(augmented.Codes()))

	ena, err := calc.ENA(augmented)
	if err != nil {
		return err
	}
	grouped, err := calc.Group(ena, dimension)
	if err != nil {
		return err
	}

	if flowsOut != "" {
		if err := writeFrame(flowsOut, augmented); err != nil {
			return err
		}
		log.Printf("Wrote augmented flows to %s\n", flowsOut)
	}
	if enaOut != "" {
		if err := writeFrame(enaOut, ena); err != nil {
			return err
		}
		log.Printf("Wrote station ENA to %s\n", enaOut)
	}
	return writeGrouped(groupedOut, grouped)
}

func writeFrame(path string, f *series.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := enaflow.WriteFrameCSV(out, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return out.Close()
}

func writeGrouped(path string, g *enaflow.GroupedENA) error {
	if path == "-" {
		return enaflow.WriteGroupedCSV(os.Stdout, g)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := enaflow.WriteGroupedCSV(out, g); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Printf("Wrote grouped ENA to %s\n", path)
	return nil
}
