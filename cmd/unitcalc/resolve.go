package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	unitcalc "github.com/grindlemire/go-unitcalc"
	"github.com/grindlemire/go-unitcalc/internal/layout"
	"github.com/grindlemire/go-unitcalc/internal/unit"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// result is one resolved unit.
type result struct {
	Sheet      string   `json:"sheet"`
	ID         string   `json:"id"`
	Name       string   `json:"name,omitempty"`
	Kind       string   `json:"kind"`
	Value      float64  `json:"value"`
	Y          *float64 `json:"y,omitempty"` // second coordinate of an xy position
	Responsive bool     `json:"responsive"`
	Complete   bool     `json:"complete"` // context held every box the unit reads
}

func newResolveCmd(a *app) *cobra.Command {
	var (
		flags   contextFlags
		direct  bool
		rawJSON bool
	)
	cmd := &cobra.Command{
		Use:   "resolve [flags] sheet...",
		Short: "Resolve every unit in one or more sheets",
		Long: `Resolve loads each sheet, builds its units and resolves them against the
sheet's layout context. Context flags override the matching sheet section.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := a.loadSheets(args, &flags)
			if len(sheets) == 0 {
				return err
			}
			results := a.resolveAll(sheets, direct)
			if rawJSON || a.cfg.Output == "json" {
				if werr := writeJSON(cmd.OutOrStdout(), results); werr != nil {
					return werr
				}
			} else {
				writeTable(cmd.OutOrStdout(), results)
			}
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&direct, "direct", false, "use each unit's own calculator instead of the strategy registry")
	cmd.Flags().BoolVar(&rawJSON, "json", false, "shorthand for --output json")
	return cmd
}

func (a *app) resolveAll(sheets []loadedSheet, direct bool) []result {
	calc := unitcalc.NewCalculator(unitcalc.WithCalculatorLogger(a.log)).Resolve
	if direct {
		calc = func(d unit.Descriptor, ctx layout.Context) float64 { return d.Calculate(ctx) }
	}

	var out []result
	for _, s := range sheets {
		for _, d := range s.units {
			res := result{
				Sheet:      s.path,
				ID:         d.ID(),
				Name:       d.Name(),
				Kind:       d.Kind().String(),
				Responsive: d.IsResponsive(),
				Complete:   d.Validate(s.ctx),
			}
			if p, ok := d.(*unit.Position); ok && p.Axis() == layout.XY {
				res.Value = calc(p, s.ctx.WithDimension(layout.X))
				y := calc(p, s.ctx.WithDimension(layout.Y))
				res.Y = &y
			} else {
				res.Value = calc(d, s.ctx)
			}
			out = append(out, res)
		}
	}
	return out
}

func writeJSON(w io.Writer, results []result) error {
	if results == nil {
		results = []result{}
	}
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func writeTable(w io.Writer, results []result) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SHEET", "ID", "KIND", "VALUE", "RESPONSIVE", "COMPLETE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range results {
		t.Row(r.Sheet, r.ID, r.Kind, formatValue(r), strconv.FormatBool(r.Responsive), strconv.FormatBool(r.Complete))
	}
	fmt.Fprintln(w, t.Render())
}

func formatValue(r result) string {
	v := strconv.FormatFloat(r.Value, 'f', -1, 64)
	if r.Y != nil {
		return v + ", " + strconv.FormatFloat(*r.Y, 'f', -1, 64)
	}
	return v
}
