package cli

import (
	"context"
	"os"
	"time"

	"parlamento/internal/client"

	"github.com/spf13/cobra"
)

const envServer = "PARLAMENTO_API_URL"

// app carries what every subcommand shares. The store lives for one
// invocation; nothing is persisted between runs.
type app struct {
	server  string
	timeout time.Duration
	store   *client.Store
	now     func() time.Time
}

// NewRootCmd builds the parlamentoctl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{now: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "parlamentoctl",
		Short: "Parliament cost tracker client",
		Long: `parlamentoctl talks to the Parlamento API server. It records laws
with their resource costs and shows the dashboard and analysis views.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.store = client.NewStore(client.NewAPI(a.server, a.timeout))
			return nil
		},
	}

	server := os.Getenv(envServer)
	if server == "" {
		server = client.DefaultBaseURL
	}
	root.PersistentFlags().StringVar(&a.server, "server", server, "API base URL (env "+envServer+")")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "per request timeout, 0 disables it")

	root.AddCommand(
		newEntriesCmd(a),
		newRegionsCmd(a),
		newSourcesCmd(a),
		newDashboardCmd(a),
		newAnalysisCmd(a),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
