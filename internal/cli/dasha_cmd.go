package cli

import (
	"fmt"
	"io"

	jathagamapp "github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/cli/formatter"
	"github.com/pariharam/jathagam/internal/contract"
	"github.com/pariharam/jathagam/internal/ephemeris"
	"github.com/spf13/cobra"
)

func newDashaCmd(app *App) *cobra.Command {
	var birth, tz string
	var moon float64
	var flags evalFlags

	cmd := &cobra.Command{
		Use:   "dasha",
		Short: "Build the Vimshottari dasha tree from the Moon's birth longitude",
		Example: `  jathagam dasha --birth "1990-05-14 08:30" --tz Asia/Kolkata --moon 55
  jathagam dasha --birth 1990-05-14T03:00:00Z --moon 55 --depth 2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			born, err := ephemeris.ParseBirth(birth, tz)
			if err != nil {
				return fmt.Errorf("--birth: %w", err)
			}

			req := jathagamapp.NewDashaRequest(born, moon)
			req.Depth = flags.depth
			req.Now, req.CutoffYears, err = flags.evaluation(tz)
			if err != nil {
				return err
			}

			resp, err := app.Dasha.BuildDasha(cmd.Context(), req)
			if err != nil {
				return err
			}
			return renderDasha(cmd.OutOrStdout(), resp, &flags)
		},
	}

	cmd.Flags().StringVar(&birth, "birth", "", "Birth date and time, e.g. \"1990-05-14 08:30\" or RFC 3339")
	cmd.Flags().StringVar(&tz, "tz", app.Config.Timezone, "IANA timezone for birth times without an offset")
	cmd.Flags().Float64Var(&moon, "moon", 0, "Sidereal longitude of the Moon at birth, in degrees")
	flags.register(cmd.Flags(), app.Config)
	_ = cmd.MarkFlagRequired("birth")
	_ = cmd.MarkFlagRequired("moon")
	cmd.MarkFlagsMutuallyExclusive("all", "current")

	return cmd
}

func renderDasha(w io.Writer, resp *jathagamapp.DashaResponse, flags *evalFlags) error {
	if flags.asJSON {
		return writeJSON(w, contract.FromDasha(resp))
	}
	_, err := fmt.Fprint(w, formatter.FormatDasha(resp, flags.view()))
	return err
}
