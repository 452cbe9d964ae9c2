package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Reload(ctx context.Context) error
	Sync(ctx context.Context) error
	Test(ctx context.Context) error
	ShowStatus()
	ListUpdates(query string)
	ShowPreview()
	ShowConfig()
	SetConfigValue(key, value string)
	SaveConfigValues(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context, idArg string) error
	ShowAudit()
	ShowAnalytics()
	ShowBackups()
	Backup(ctx context.Context) error
	SelectBackup(name string)
	Restore(ctx context.Context) error
	Export(ctx context.Context, kind string) error
	Import(ctx context.Context, kind string) error
	SaveToken(ctx context.Context) error
	Lang(value string) error
}

// runREPL starts a read–eval–print loop over the dashboard actions.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; the orchestrator
// already routes errors into message slots and the toast. This keeps the REPL
// loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dash %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Commands: reload, status, (l)ist [query], preview, config, set <key> <value>,")
			printlnFn("  saveconfig, add, edit, delete <id>, sync, test, audit, analytics, backups,")
			printlnFn("  backup, select <file>, restore, export json|csv, import json|csv,")
			printlnFn("  token, lang de|en, exit")

		case "reload":
			_ = a.Reload(ctx)

		case "status":
			a.ShowStatus()

		case "l", "list":
			a.ListUpdates(strings.Join(args, " "))

		case "preview":
			a.ShowPreview()

		case "config":
			a.ShowConfig()

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set <key> <value>")
				continue
			}
			a.SetConfigValue(args[0], strings.Join(args[1:], " "))

		case "saveconfig":
			_ = a.SaveConfigValues(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "sync":
			_ = a.Sync(ctx)

		case "test":
			_ = a.Test(ctx)

		case "audit":
			a.ShowAudit()

		case "analytics":
			a.ShowAnalytics()

		case "backups":
			a.ShowBackups()

		case "backup":
			_ = a.Backup(ctx)

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <file>")
				continue
			}
			a.SelectBackup(args[0])

		case "restore":
			_ = a.Restore(ctx)

		case "export":
			kind := "json"
			if len(args) > 0 {
				kind = args[0]
			}
			_ = a.Export(ctx, kind)

		case "import":
			kind := "json"
			if len(args) > 0 {
				kind = args[0]
			}
			_ = a.Import(ctx, kind)

		case "token":
			_ = a.SaveToken(ctx)

		case "lang":
			if len(args) == 0 {
				printlnFn("Usage: lang de|en")
				continue
			}
			_ = a.Lang(args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
