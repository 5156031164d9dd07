package helpers

import (
	"github.com/spf13/cobra"

	"github.com/discorder/discorder/cmd/config"
	resolver "github.com/discorder/discorder/internal/config"
)

// SetupFlags adds the message and config flags to a command
func SetupFlags(cmd *cobra.Command, cfg *config.Flags) {
	cmd.Flags().StringVarP(&cfg.Webhook, "webhook", "w", "", "Discord webhook URL (or set webhook in the config file)")
	cmd.Flags().StringVarP(&cfg.Text, "text", "t", "", "Text message to send")
	cmd.Flags().StringVarP(&cfg.File, "file", "f", "", "File to upload (stdin is uploaded when neither --text nor --file is set)")
	cmd.Flags().StringVarP(&cfg.Config, "config", "c", "", "Config file path (or set "+resolver.EnvConfigPath+")")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log resolution and request details to stderr")
}

// CLIParams returns the parameters given on the command line. Flags that were
// not set are left nil so config file values can fill them.
func CLIParams(cmd *cobra.Command, cfg *config.Flags) resolver.Params {
	var params resolver.Params
	if cmd.Flags().Changed("webhook") {
		params.Webhook = resolver.String(cfg.Webhook)
	}
	if cmd.Flags().Changed("text") {
		params.Text = resolver.String(cfg.Text)
	}
	if cmd.Flags().Changed("file") {
		params.File = resolver.String(cfg.File)
	}
	return params
}
