package cmd

import (
	"github.com/spf13/cobra"

	"github.com/discorder/discorder/cmd/config"
	"github.com/discorder/discorder/cmd/helpers"
	resolver "github.com/discorder/discorder/internal/config"
	"github.com/discorder/discorder/internal/output"
	"github.com/discorder/discorder/internal/webhook"
)

// runSend resolves the parameters and performs the single webhook request.
// Returned errors abort before any request is made; a rejected or failed
// request is reported as "Failed!" and still exits 0.
func runSend(cmd *cobra.Command, flags *config.Flags) error {
	logger := helpers.NewLogger(cmd.ErrOrStderr(), flags.Verbose)

	resolved, err := resolver.NewResolver(logger).Resolve(helpers.CLIParams(cmd, flags), flags.Config)
	if err != nil {
		return err
	}
	if resolved.ConfigPath != "" {
		logger.Debug("using config file", "path", resolved.ConfigPath)
	}

	sub, err := helpers.BuildSubmission(resolved.Params, cmd.InOrStdin(), logger)
	if err != nil {
		return err
	}

	client := webhook.NewClient(&webhook.Config{
		URL:       resolved.WebhookURL(),
		UserAgent: webhook.DefaultUserAgent + "/" + version,
	}, nil, logger)

	result := output.FromError(client.Send(cmd.Context(), sub))
	logger.Debug("webhook finished", "status", string(result.Status), "code", result.StatusCode)

	return output.Print(cmd.OutOrStdout(), result)
}
