package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/todo"
)

// timeNow is the clock used to resolve relative due dates.
var timeNow = time.Now

func newInitCmd(opts *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a template config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				p, err := config.ConfigPath()
				if err != nil {
					return fmt.Errorf("failed to get config path: %w", err)
				}
				path = p
			}
			return writeTemplate(cmd.InOrStdin(), cmd.OutOrStdout(), path, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config without asking")
	return cmd
}

// writeTemplate writes the config template to path, asking before it
// replaces an existing file.
func writeTemplate(in io.Reader, out io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := config.WriteTemplate(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	fmt.Fprintf(out, "Config file created: %s\n", path)
	return nil
}

func newListCmd(opts *options) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the task list and summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := todo.ParseFilter(filter)
			if err != nil {
				return err
			}
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			printList(cmd.OutOrStdout(), s.store, f, s.cfg.UI.DateFormat)
			return s.store.Err()
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "all, active or completed")
	return cmd
}

// printList writes the tasks visible under f followed by the summary.
func printList(w io.Writer, store *todo.Store, f todo.Filter, dateLayout string) {
	for _, t := range todo.Visible(store.Tasks(), f) {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s  (%s, %s", box, t.Text, t.Priority.Label(), t.Category.Label())
		if t.DueDate != nil {
			line += ", due " + t.DueDisplay(dateLayout)
		}
		fmt.Fprintln(w, line+")")
	}
	summary := store.Summary()
	fmt.Fprintln(w, summary.TotalText())
	fmt.Fprintln(w, summary.CompletedText())
}

func newAddCmd(opts *options) *cobra.Command {
	var priority, category, due string
	cmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Add a task without opening the TUI",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := todo.ParsePriority(priority)
			if err != nil {
				return err
			}
			c, err := todo.ParseCategory(category)
			if err != nil {
				return err
			}
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			task, err := addTask(s.store, strings.Join(args, " "), p, c, due)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", task.ID, task.Text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "high, medium or low")
	cmd.Flags().StringVarP(&category, "category", "c", "personal", "work, personal, shopping or health")
	cmd.Flags().StringVar(&due, "due", "", "due date: YYYY-MM-DD, today or tomorrow")
	return cmd
}

// addTask adds text to store, resolving a relative due date against today.
func addTask(store *todo.Store, text string, p todo.Priority, c todo.Category, due string) (todo.Task, error) {
	var dueDate *todo.Date
	switch strings.ToLower(strings.TrimSpace(due)) {
	case "":
	case "today":
		d := todo.DateOf(timeNow())
		dueDate = &d
	case "tomorrow":
		d := todo.DateOf(timeNow()).AddDays(1)
		dueDate = &d
	default:
		d, err := todo.ParseDate(due)
		if err != nil {
			return todo.Task{}, fmt.Errorf("invalid due date: %w", err)
		}
		dueDate = &d
	}

	task, ok := store.Add(text, p, c, dueDate)
	if !ok {
		return todo.Task{}, fmt.Errorf("task text must not be empty")
	}
	if err := store.Err(); err != nil {
		return task, fmt.Errorf("failed to save task: %w", err)
	}
	return task, nil
}
