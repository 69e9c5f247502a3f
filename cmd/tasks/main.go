package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abatilo/tasks/internal/config"
	bitserrors "github.com/abatilo/tasks/internal/errors"
	"github.com/abatilo/tasks/internal/export"
	"github.com/abatilo/tasks/internal/output"
	"github.com/abatilo/tasks/internal/storage"
	"github.com/abatilo/tasks/internal/task"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	jsonOutput bool
	filePath   string
	configPath string
	debug      bool

	cfg       *config.Config
	formatter output.Formatter
	logger    *slog.Logger
	now       func() time.Time
	stderr    io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{now: time.Now, stderr: stderr}
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if a.formatter == nil {
			a.formatter = output.NewHumanFormatter()
		}
		fmt.Fprint(stdout, a.formatter.FormatError(err))
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tasks",
		Short:         "A small file-backed task list",
		Long:          "tasks - add, list, complete and delete tasks stored in a local JSON file.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.jsonOutput {
				a.formatter = output.NewJSONFormatter()
			} else {
				a.formatter = output.NewHumanFormatter()
			}

			level := slog.LevelInfo
			if a.debug {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

			cfg, err := config.Load(a.configPath, a.filePath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("resolved task file", "path", cfg.File, "lock", cfg.Lock)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&a.filePath, "file", "f", "", "Task file (default from $TASKS_FILE, config, or data dir)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tasks/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(
		a.addCmd(),
		a.listCmd(),
		a.doneCmd(),
		a.rmCmd(),
		a.exportCmd(),
		a.pathCmd(),
	)

	return rootCmd
}

// withStore opens the task file, runs fn and releases the file lock.
func (a *app) withStore(fn func(*storage.Store) error) error {
	opts := []storage.Option{
		storage.WithLogger(a.logger),
		storage.WithClock(a.now),
	}
	if !a.cfg.Lock {
		opts = append(opts, storage.WithoutLock())
	}

	store, err := storage.Open(a.cfg.File, opts...)
	if err != nil {
		return err
	}

	err = fn(store)
	if closeErr := store.Close(); err == nil {
		err = closeErr
	}
	return err
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, bitserrors.InvalidIDError{Value: s}
	}
	return id, nil
}

// addCmd implements 'tasks add'.
func (a *app) addCmd() *cobra.Command {
	var due string
	var priority string
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.cfg.DefaultPriority
			if priority != "" {
				var ok bool
				if p, ok = task.ParsePriority(priority); !ok {
					return bitserrors.InvalidPriorityError{Value: priority}
				}
			}

			return a.withStore(func(store *storage.Store) error {
				t, view, err := store.AddTask(strings.Join(args, " "), due, p)
				if err != nil {
					return err
				}
				for _, e := range view {
					if e.ID == t.ID {
						fmt.Fprint(cmd.OutOrStdout(), a.formatter.FormatTask(e))
						break
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (low, medium, high)")
	return cmd
}

// listCmd implements 'tasks list'.
func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, pending first and by due date",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(store *storage.Store) error {
				fmt.Fprint(cmd.OutOrStdout(), a.formatter.FormatView(store.OrderedView()))
				return nil
			})
		},
	}
}

// doneCmd implements 'tasks done'.
func (a *app) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete"},
		Short:   "Mark a task complete",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withStore(func(store *storage.Store) error {
				view, err := store.MarkComplete(id)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), a.formatter.FormatView(view))
				return nil
			})
		},
	}
}

// rmCmd implements 'tasks rm'.
func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withStore(func(store *storage.Store) error {
				view, err := store.DeleteTask(id)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), a.formatter.FormatView(view))
				return nil
			})
		},
	}
}

// exportCmd implements 'tasks export'.
func (a *app) exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the ordered task list as JSON, YAML or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return a.withStore(func(store *storage.Store) error {
				return export.Write(cmd.OutOrStdout(), store.OrderedView(), f)
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", string(export.FormatJSON), "Export format (json, yaml, toml)")
	return cmd
}

// pathCmd implements 'tasks path'.
func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the task file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), a.formatter.FormatMessage(a.cfg.File))
			return nil
		},
	}
}
