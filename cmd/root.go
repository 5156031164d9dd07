package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/discorder/discorder/cmd/config"
	"github.com/discorder/discorder/cmd/helpers"
)

// version is set at build time with -ldflags "-X github.com/discorder/discorder/cmd.version=..."
var version = "dev"

// NewRootCmd creates the discorder command
func NewRootCmd() *cobra.Command {
	flags := &config.Flags{}

	cmd := &cobra.Command{
		Use:   "discorder",
		Short: "Send text or a file to a Discord webhook",
		Long: `Discorder posts a text message, a file, or whatever is piped on stdin to a
Discord incoming webhook.

Values missing from the command line are taken from a YAML config file with
the keys webhook, text and file. The file is found through $DISCORDER_CONFIG,
--config, or the first of ./discorder.yml, ./discorder.yaml,
<config dir>/discorder/discorder.yml and <config dir>/discorder/discorder.yaml.`,
		Example: `  discorder --webhook https://discord.com/api/webhooks/1234567890/ABCDEFGHIJKL --text "Hello, World!"
  discorder --webhook https://discord.com/api/webhooks/1234567890/ABCDEFGHIJKL --file ./message.txt
  make test 2>&1 | discorder -c ~/.config/discorder/ci.yml`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is fine; existing variables are not overridden
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, flags)
		},
	}

	helpers.SetupFlags(cmd, flags)
	return cmd
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		cancel()
		os.Exit(1)
	}
}
