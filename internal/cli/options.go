package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/config"
)

// roofOption describes one roof type of the catalog.
type roofOption struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	BaseR      float64 `json:"base_r"`
}

// eerOption describes one EER band.
type eerOption struct {
	Name string  `json:"name"`
	EER  float64 `json:"eer"`
}

// optionsCatalog lists every choice offered to the input surfaces.
type optionsCatalog struct {
	RoofTypes      []roofOption `json:"roof_types"`
	RoofInsulation []string     `json:"roof_insulation"`
	WallInsulation []string     `json:"wall_insulation"`
	EERBands       []eerOption  `json:"eer_bands"`
	Materials      []string     `json:"materials"`
}

// NewOptionsCmd creates the "options" command listing the input catalog.
func NewOptionsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List roof types, insulation presets and EER bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := buildCatalog()
			if err != nil {
				return err
			}
			switch output {
			case config.FormatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			case config.FormatTable, "":
				renderCatalog(cmd.OutOrStdout(), catalog)
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (table, json)", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", config.FormatTable, "output format (table, json)")
	return cmd
}

func buildCatalog() (optionsCatalog, error) {
	var c optionsCatalog
	for _, rt := range calculator.RoofTypes() {
		mult, err := calculator.RoofMultiplier(rt)
		if err != nil {
			return c, err
		}
		baseR, err := calculator.RoofBaseResistance(rt)
		if err != nil {
			return c, err
		}
		c.RoofTypes = append(c.RoofTypes, roofOption{Name: rt.String(), Multiplier: mult, BaseR: baseR})
	}
	for _, in := range calculator.RoofInsulationPresets() {
		c.RoofInsulation = append(c.RoofInsulation, in.String())
	}
	for _, in := range calculator.WallInsulationPresets() {
		c.WallInsulation = append(c.WallInsulation, in.String())
	}
	for _, b := range calculator.EERBands() {
		c.EERBands = append(c.EERBands, eerOption{Name: b.String(), EER: b.Value()})
	}
	for _, m := range []calculator.Material{calculator.MaterialPolystyreneFoam, calculator.MaterialPolyurethaneFoam} {
		lambda, err := calculator.Conductivity(m)
		if err != nil {
			return c, err
		}
		c.Materials = append(c.Materials, fmt.Sprintf("%s (λ=%g W/mK)", m, lambda))
	}
	return c, nil
}

func renderCatalog(w io.Writer, c optionsCatalog) {
	fmt.Fprintln(w, "Roof types:")
	for _, rt := range c.RoofTypes {
		fmt.Fprintf(w, "  %-10s multiplier %.2f, base R %.2f m²K/W\n", rt.Name, rt.Multiplier, rt.BaseR)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Roof insulation: %s\n", strings.Join(c.RoofInsulation, ", "))
	fmt.Fprintf(w, "Wall insulation: %s\n", strings.Join(c.WallInsulation, ", "))
	fmt.Fprintf(w, "Materials:       %s\n", strings.Join(c.Materials, ", "))
	fmt.Fprintln(w, "                 any positive thickness is accepted, e.g. xps-120")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "EER bands:")
	for _, b := range c.EERBands {
		fmt.Fprintf(w, "  %-10s %g\n", b.Name, b.EER)
	}
}
