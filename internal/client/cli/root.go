package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/eministar/nebidash/internal/client/dashboard"
	"github.com/spf13/cobra"
)

// RunREPL loads the dashboard once and hands control to the interactive loop.
// The initial reload may fail (for example with no token saved yet); the error
// lands in the global message slot and the user can fix it from inside the
// REPL.
func (a *App) RunREPL(ctx context.Context) {
	_ = a.Reload(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.promptStatus, scanner)
}

func (a *App) promptStatus() string {
	parts := []string{string(a.svc.ActiveLocale())}
	if s := a.store.Status(); s != nil && s.WeekLabel != "" {
		parts = append(parts, s.WeekLabel)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// NewRootCommand builds the dashctl command tree. Subcommands needing server
// state reload first so they operate on fresh data.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dashctl",
		Short: "Control surface for the NebiUpdate changelog bot",
		Long: "dashctl views and edits the bot's weekly change entries, tunes its\n" +
			"configuration and manages exports and backups over the dashboard API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.RunREPL(cmd.Context())
			return nil
		},
	}

	// These flags are consumed by config.LoadConfig before cobra runs;
	// registering them here keeps cobra's parser from rejecting them and puts
	// them in the help output. Short forms are the canonical spelling.
	pf := root.PersistentFlags()
	pf.StringP("server", "a", "", "base URL of the dashboard API")
	pf.IntP("timeout", "t", 0, "request timeout in seconds")
	pf.StringP("downloads", "d", "", "download directory for exports")
	pf.StringP("session", "s", "", "session file path")
	pf.StringP("config", "c", "", "path to a JSON config file")

	root.AddCommand(
		newReplCommand(app),
		newStatusCommand(app),
		newConfigCommand(app),
		newListCommand(app),
		newPreviewCommand(app),
		newSyncCommand(app),
		newTestCommand(app),
		newAddCommand(app),
		newEditCommand(app),
		newDeleteCommand(app),
		newExportCommand(app),
		newImportCommand(app),
		newBackupCommand(app),
		newRestoreCommand(app),
		newTokenCommand(app),
		newLangCommand(app),
	)

	return root
}

func newReplCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell (same as running dashctl bare)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.RunREPL(cmd.Context())
			return nil
		},
	}
}

func newConfigCommand(app *App) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "config [--set key=value ...]",
		Short: "Show the bot configuration, or change and save values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reload(cmd.Context()); err != nil {
				return err
			}
			if len(sets) == 0 {
				app.ShowConfig()
				return nil
			}
			for _, kv := range sets {
				key, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, want key=value", kv)
				}
				app.SetConfigValue(key, value)
			}
			return app.SaveConfigValues(cmd.Context())
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set a config key (repeatable)")
	return cmd
}

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Reload and print the dashboard status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reload(cmd.Context()); err != nil {
				return err
			}
			app.ShowStatus()
			return nil
		},
	}
}

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List the current week's entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reload(cmd.Context()); err != nil {
				return err
			}
			app.ListUpdates(strings.Join(args, " "))
			return nil
		},
	}
}

func newPreviewCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Print the rendered week message",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reload(cmd.Context()); err != nil {
				return err
			}
			app.ShowPreview()
			return nil
		},
	}
}

func newSyncCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Ask the bot to repost the week message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Sync(cmd.Context())
		},
	}
}

func newTestCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Trigger a test message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Test(cmd.Context())
		},
	}
}

func newAddCommand(app *App) *cobra.Command {
	var entryType, text, author string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a change entry to the current week",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := app.svc.AddForm()
			if entryType != "" {
				form.Type = entryType
			}
			form.Text = text
			if author != "" {
				form.Author = author
			}
			app.svc.SetAddForm(form)
			return app.svc.AddEntry(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&entryType, "type", "added", "entry type (added, changed, removed)")
	cmd.Flags().StringVar(&text, "text", "", "entry text")
	cmd.Flags().StringVar(&author, "author", "", "entry author")
	return cmd
}

func newEditCommand(app *App) *cobra.Command {
	var id, entryType, text, author string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit one entry; empty fields keep their current value",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.svc.SetEditForm(dashboard.EditForm{ID: id, Type: entryType, Text: text, Author: author})
			return app.svc.EditEntry(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "entry id (required, positive integer)")
	cmd.Flags().StringVar(&entryType, "type", "", "new entry type")
	cmd.Flags().StringVar(&text, "text", "", "new entry text")
	cmd.Flags().StringVar(&author, "author", "", "new entry author")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one entry (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Delete(cmd.Context(), args[0])
		},
	}
}

func newExportCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "export [json|csv]",
		Short:     "Download an export into the download directory",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"json", "csv"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "json"
			if len(args) > 0 {
				kind = args[0]
			}
			return app.Export(cmd.Context(), kind)
		},
	}
}

func newImportCommand(app *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:       "import [json|csv]",
		Short:     "Import entries from a file or stdin",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"json", "csv"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "json"
			if len(args) > 0 {
				kind = args[0]
			}
			if file == "" {
				return app.Import(cmd.Context(), kind)
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}
			return app.ImportPayload(cmd.Context(), kind, string(data))
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "payload file (reads interactively when omitted)")
	return cmd
}

func newBackupCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create a backup and list the available files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Backup(cmd.Context()); err != nil {
				return err
			}
			app.ShowBackups()
			return nil
		},
	}
	return cmd
}

func newRestoreCommand(app *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Restore needs the listing loaded so the selection refers to a
			// real file.
			if err := app.Reload(cmd.Context()); err != nil {
				return err
			}
			if file != "" {
				app.SelectBackup(file)
			}
			return app.Restore(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "backup file name (defaults to the first listed)")
	return cmd
}

func newTokenCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Prompt for the dashboard token and persist it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.SaveToken(cmd.Context())
		},
	}
}

func newLangCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "lang <de|en>",
		Short:     "Persist a display-language override",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"de", "en"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Lang(args[0])
		},
	}
}
