package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gmolchanov/quadrant/internal/config"
	"github.com/gmolchanov/quadrant/internal/service"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Tasks  service.TaskService
	Stats  service.StatsService
	Config *config.Config
	Logger *log.Logger
}

// NewRootCmd creates the top-level "quadrant" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "quadrant",
		Short: "Eisenhower-matrix to-do list API",
	}

	root.AddCommand(
		newServeCmd(app),
		newTaskCmd(app),
	)

	return root
}
