package cli

import (
	"github.com/pariharam/jathagam/internal/config"
	"github.com/pariharam/jathagam/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Dasha   service.DashaService
	Chart   service.ChartService
	Navamsa service.NavamsaService

	// Config supplies flag defaults such as timezone, depth and cutoff.
	Config config.Config

	// IsInteractive reports whether stdin is a terminal. The wizard
	// refuses to start when it is nil or returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "jathagam" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "jathagam",
		Short:         "Vedic birth chart, navamsa and Vimshottari dasha calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDashaCmd(app),
		newNavamsaCmd(app),
		newChartCmd(app),
		newWizardCmd(app),
	)

	return root
}
