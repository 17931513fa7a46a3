// farmctl is the operator CLI for the farmdesk backend.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"farmdesk/config"
	"farmdesk/pkg/client"
	"farmdesk/pkg/listctl"
	"farmdesk/pkg/logging"
)

// app is the state shared by every subcommand, filled in by the root
// command's PersistentPreRunE.
type app struct {
	apiURL  string
	verbose bool
	timeout time.Duration

	cfg config.AppConfig
	log *logrus.Logger
	api *client.Client
	out io.Writer
	err io.Writer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "farmctl",
		Short:        "Manage tasks, supervisors, plots and inventory",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "Backend base URL (default: API_BASE_URL)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "Per-command timeout")

	root.AddCommand(
		tasksCmd(a),
		supervisorsCmd(a),
		plotsCmd(a),
		inventoryCmd(a),
		monitorCmd(a),
		stockCmd(a),
		loadCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.out = cmd.OutOrStdout()
	a.err = cmd.ErrOrStderr()

	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	a.log = logging.New(logging.Config{Level: level, Format: cfg.LogFormat, Out: a.err})

	base := cfg.APIBaseURL
	if a.apiURL != "" {
		base = a.apiURL
	}
	a.api = client.New(base, client.WithLogger(a.log.WithField("component", "client")))
	return nil
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.timeout)
}

// notifier prints failed mutations the way the dashboard shows a toast.
func (a *app) notifier() listctl.Notifier {
	return listctl.NotifierFunc(func(n listctl.Notice) {
		fmt.Fprintln(a.err, warnStyle.Render("! "+n.String()))
	})
}

func (a *app) logEntry(resource string) *logrus.Entry {
	return a.log.WithField("resource", resource)
}
