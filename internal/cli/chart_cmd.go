package cli

import (
	"fmt"

	jathagamapp "github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/cli/formatter"
	"github.com/pariharam/jathagam/internal/contract"
	"github.com/pariharam/jathagam/internal/ephemeris"
	"github.com/spf13/cobra"
)

func newChartCmd(app *App) *cobra.Command {
	var positions string
	var flags evalFlags

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Assemble a birth chart from an ephemeris positions file",
		Long: `Reads a YAML or JSON positions file holding the birth instant, the
optional lagna and the sidereal longitudes of Sun through Rahu, then
prints the rasi and navamsa placements and the dasha timeline.`,
		Example: `  jathagam chart --positions birth.yaml
  jathagam chart --positions birth.json --now 2030-01-01 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ephemeris.LoadPositions(positions)
			if err != nil {
				return err
			}
			if f.Timezone == "" {
				f.Timezone = app.Config.Timezone
			}
			if f.Ayanamsa == "" {
				f.Ayanamsa = app.Config.Ayanamsa
			}
			birth, err := ephemeris.Convert(f)
			if err != nil {
				return err
			}

			req := jathagamapp.NewChartRequest(birth.Time, birth.Planets)
			req.Lagna = birth.Lagna
			req.Ayanamsa = birth.Ayanamsa
			req.Depth = flags.depth
			req.Now, req.CutoffYears, err = flags.evaluation(f.Timezone)
			if err != nil {
				return err
			}

			resp, err := app.Chart.ComputeChart(cmd.Context(), req)
			if err != nil {
				return err
			}

			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), contract.FromChart(resp))
			}
			out := formatter.FormatChart(resp, flags.view())
			if flags.currentOnly {
				out = formatter.FormatCurrent(resp.Dasha.Current, resp.Dasha.EvaluatedAt) + "\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&positions, "positions", "p", "", "Path to a YAML or JSON positions file")
	flags.register(cmd.Flags(), app.Config)
	_ = cmd.MarkFlagRequired("positions")
	cmd.MarkFlagsMutuallyExclusive("all", "current")

	return cmd
}
