// Package main is the entry point for the todo-tui application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time.
var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flags shared by every command.
type options struct {
	configPath string
	ephemeral  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var filter string

	cmd := &cobra.Command{
		Use:   "todo-tui",
		Short: "A keyboard and mouse driven to-do list for the terminal",
		Long: `todo-tui keeps a single to-do list with priorities, categories and due
dates. Tasks are saved to a local data file (JSON, YAML or TOML) or a
SQLite database after every change.

Configuration: ~/.config/todo-tui/config.yaml (run 'todo-tui init').`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(opts, filter)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/todo-tui/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.ephemeral, "ephemeral", false, "keep tasks in memory only")
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "initial filter: all, active or completed")

	cmd.AddCommand(newInitCmd(opts), newListCmd(opts), newAddCmd(opts))
	return cmd
}
