package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"focal/internal/alfred"
	"focal/internal/config"
	"focal/internal/osascript"
	"focal/internal/report"
	"focal/internal/workflow"
)

var debug bool

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		// Alfred shows stdout; diagnostics stay on the stderr log stream.
		reportFailure(os.Stdout, err)
		os.Exit(1)
	}
}

func reportFailure(w io.Writer, err error) {
	msg := report.UserMessage(err)
	fmt.Fprintf(w, "%s: %s\n", msg.Title, msg.Message)
	if msg.Suggestion != "" {
		fmt.Fprintln(w, msg.Suggestion)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "focal",
		Short:         "Create calendar events from natural language",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newCalendarsCmd())
	rootCmd.AddCommand(newConfigureCmd())

	return rootCmd
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <text>",
		Short: "Create a calendar event from an event description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			res, err := workflow.New(cfg).Create(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			switch {
			case res.UsedFallback:
				fmt.Fprintf(cmd.OutOrStdout(), "Event created (basic parsing): %s\n", res.Sentence)
			case res.Sentence != "":
				fmt.Fprintf(cmd.OutOrStdout(), "Event created: %s\n", res.Sentence)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "Event created")
			}
			return nil
		},
	}
}

func newFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter [query]",
		Short: "Emit script filter JSON for a partially typed query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return alfred.Write(cmd.OutOrStdout(), query)
		},
	}
}

func newCalendarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendars",
		Short: "List calendar names known to the Calendar app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			names, err := osascript.NewRunner(cfg.ScriptTimeout).ListCalendars(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newConfigureCmd() *cobra.Command {
	var apiKey, app, calendar string
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store the API key, target app and default calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			if apiKey != "" {
				if err := config.SaveAPIKey(dir, apiKey); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "API key saved")
			}
			if app != "" {
				if err := config.SaveApp(dir, config.ParseApp(app)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Calendar app set to %s\n", config.ParseApp(app))
			}
			if calendar != "" {
				if err := config.SaveCalendarName(dir, calendar); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Default calendar set to %s\n", calendar)
			}
			if apiKey == "" && app == "" && calendar == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Config dir: %s\n", dir)
				fmt.Fprintf(cmd.OutOrStdout(), "API key configured: %t\n", cfg.APIKey != "")
				fmt.Fprintf(cmd.OutOrStdout(), "Calendar app: %s\n", cfg.App)
				if cfg.CalendarName != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Default calendar: %s\n", cfg.CalendarName)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "OpenAI API key")
	cmd.Flags().StringVar(&app, "app", "", "Target calendar app (fantastical or calendar)")
	cmd.Flags().StringVar(&calendar, "calendar", "", "Default calendar name")
	return cmd
}
