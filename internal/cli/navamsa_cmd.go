package cli

import (
	"fmt"
	"strconv"

	jathagamapp "github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/cli/formatter"
	"github.com/pariharam/jathagam/internal/contract"
	"github.com/spf13/cobra"
)

func newNavamsaCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "navamsa LONGITUDE...",
		Short: "Map sidereal longitudes to their navamsa (D9) signs",
		Example: `  jathagam navamsa 0 29.999 30 123.4
  jathagam navamsa --json -- -10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := jathagamapp.NavamsaRequest{Longitudes: make([]float64, 0, len(args))}
			for _, a := range args {
				lon, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid longitude %q", a)
				}
				req.Longitudes = append(req.Longitudes, lon)
			}

			resp, err := app.Navamsa.MapNavamsa(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), contract.FromNavamsa(resp))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNavamsa(resp))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")

	return cmd
}
