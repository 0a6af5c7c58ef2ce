package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/alexandre-normand/slacklane"
	"github.com/alexandre-normand/slacklane/actions"
	"github.com/alexandre-normand/slacklane/config"
	"github.com/alexandre-normand/slacklane/slog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
)

const (
	debugFlag  = "debug"
	apiURLFlag = "api-url"
)

// runner runs an action with the bot and the action's option values
type runner func(ctx context.Context, b *slacklane.Bot, v *viper.Viper) (r *slacklane.Result, err error)

// newRootCmd returns the slacklane command with all action commands. Results are printed to
// out while reports and logs go to errOut
func newRootCmd(out io.Writer, errOut io.Writer) (root *cobra.Command) {
	root = &cobra.Command{
		Use:   "slacklane",
		Short: "Slack messages and files from build pipelines",
		Long: `Post, update and delete slack messages with rich build attachments, upload files
and list files using the slack web api.

Every option can also be set with its environment variable. The result of the slack
api call is printed as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool(debugFlag, false, fmt.Sprintf("Debug logging (env: %s)", config.DebugEnv))
	root.PersistentFlags().String(apiURLFlag, "", fmt.Sprintf("Slack web api base url (env: %s)", config.SlackAPIURLEnv))

	root.AddCommand(
		newActionCmd(out, errOut, "post", "Post a slack message",
			"Post a slack message to any #channel/@user using the slack chat.postMessage api.",
			config.PostToSlackOptions, func(ctx context.Context, b *slacklane.Bot, v *viper.Viper) (*slacklane.Result, error) {
				req, err := actions.PostFromConfig(v)
				if err != nil {
					return nil, err
				}

				return b.PostMessage(ctx, req)
			}),
		newActionCmd(out, errOut, "update", "Update a slack message",
			"Update a slack message using its timestamp and the slack chat.update api.",
			config.UpdateSlackMessageOptions, func(ctx context.Context, b *slacklane.Bot, v *viper.Viper) (*slacklane.Result, error) {
				req, err := actions.UpdateFromConfig(v)
				if err != nil {
					return nil, err
				}

				return b.UpdateMessage(ctx, req)
			}),
		newActionCmd(out, errOut, "delete", "Delete a slack message",
			"Delete a slack message using its timestamp and the slack chat.delete api.",
			config.DeleteSlackMessageOptions, func(ctx context.Context, b *slacklane.Bot, v *viper.Viper) (*slacklane.Result, error) {
				return b.DeleteMessage(ctx, actions.DeleteFromConfig(v))
			}),
		newActionCmd(out, errOut, "upload", "Upload a file to slack",
			"Upload a file to slack channels using the slack files.upload api.",
			config.FileUploadToSlackOptions, func(ctx context.Context, b *slacklane.Bot, v *viper.Viper) (*slacklane.Result, error) {
				return b.UploadFile(ctx, actions.FileUploadFromConfig(v))
			}),
		newActionCmd(out, errOut, "files", "List files of a slack channel",
			"List files of a slack channel using the slack files.list api.",
			config.FetchFilesSlackOptions, func(ctx context.Context, b *slacklane.Bot, v *viper.Viper) (*slacklane.Result, error) {
				req, err := actions.FileListingFromConfig(v)
				if err != nil {
					return nil, err
				}

				return b.ListFiles(ctx, req)
			}),
	)

	return root
}

// newActionCmd returns a command with a flag for every option, running the action and
// printing its result
func newActionCmd(out io.Writer, errOut io.Writer, use string, short string, long string, options []config.Option, run runner) (cmd *cobra.Command) {
	v := config.NewViperWithDefaults()

	cmd = &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
	}

	bindErr := config.BindOptions(v, cmd.Flags(), options)

	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		reporter := newColorReporter(errOut)

		defer func() {
			if err != nil && !reporter.reported {
				reporter.Error(err.Error())
			}
		}()

		if bindErr != nil {
			return bindErr
		}

		if err = bindGlobals(v, cmd); err != nil {
			return err
		}

		if err = config.Validate(v, options); err != nil {
			return err
		}

		logger := slog.NewSLogger(log.New(errOut, "slacklane: ", log.LstdFlags), v.GetBool(config.DebugKey))
		b, err := slacklane.New(v,
			slacklane.OptionLogger(logger),
			slacklane.OptionReporter(reporter),
			slacklane.OptionMeter(otel.GetMeterProvider().Meter("github.com/alexandre-normand/slacklane")),
		)
		if err != nil {
			return err
		}

		r, err := run(cmd.Context(), b, v)
		if r != nil {
			if perr := printResult(out, r); perr != nil && err == nil {
				return perr
			}
		}

		return err
	}

	return cmd
}

// bindGlobals binds the global keys to their environment variables and to the root flags
func bindGlobals(v *viper.Viper, cmd *cobra.Command) (err error) {
	if err = config.BindEnvironment(v); err != nil {
		return err
	}

	if err = v.BindPFlag(config.DebugKey, cmd.Flags().Lookup(debugFlag)); err != nil {
		return errors.Wrapf(err, "failed to bind flag [%s]", debugFlag)
	}

	if err = v.BindPFlag(config.APIURLKey, cmd.Flags().Lookup(apiURLFlag)); err != nil {
		return errors.Wrapf(err, "failed to bind flag [%s]", apiURLFlag)
	}

	return nil
}

// printResult writes the result as indented JSON
func printResult(out io.Writer, r *slacklane.Result) (err error) {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error encoding result")
	}

	_, err = fmt.Fprintln(out, string(raw))
	return err
}
