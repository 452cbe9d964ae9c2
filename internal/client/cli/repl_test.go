package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeExec records every dispatched command so tests can assert on the
// routing without any real App behind the REPL.
type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeExec) Reload(context.Context) error { f.record("reload"); return nil }
func (f *fakeExec) Sync(context.Context) error   { f.record("sync"); return nil }
func (f *fakeExec) Test(context.Context) error   { f.record("test"); return nil }
func (f *fakeExec) ShowStatus()                  { f.record("status") }
func (f *fakeExec) ListUpdates(query string)     { f.record("list %q", query) }
func (f *fakeExec) ShowPreview()                 { f.record("preview") }
func (f *fakeExec) ShowConfig()                  { f.record("config") }
func (f *fakeExec) SetConfigValue(key, value string) {
	f.record("set %s=%s", key, value)
}
func (f *fakeExec) SaveConfigValues(context.Context) error { f.record("saveconfig"); return nil }
func (f *fakeExec) Add(context.Context) error              { f.record("add"); return nil }
func (f *fakeExec) Edit(context.Context) error             { f.record("edit"); return nil }
func (f *fakeExec) Delete(_ context.Context, idArg string) error {
	f.record("delete %s", idArg)
	return nil
}
func (f *fakeExec) ShowAudit()             { f.record("audit") }
func (f *fakeExec) ShowAnalytics()         { f.record("analytics") }
func (f *fakeExec) ShowBackups()           { f.record("backups") }
func (f *fakeExec) Backup(context.Context) error {
	f.record("backup")
	return nil
}
func (f *fakeExec) SelectBackup(name string) { f.record("select %s", name) }
func (f *fakeExec) Restore(context.Context) error {
	f.record("restore")
	return nil
}
func (f *fakeExec) Export(_ context.Context, kind string) error {
	f.record("export %s", kind)
	return nil
}
func (f *fakeExec) Import(_ context.Context, kind string) error {
	f.record("import %s", kind)
	return nil
}
func (f *fakeExec) SaveToken(context.Context) error { f.record("token"); return nil }
func (f *fakeExec) Lang(value string) error         { f.record("lang %s", value); return nil }

func runScript(t *testing.T, script string) (*fakeExec, []string) {
	t.Helper()

	var printed []string
	origPrintln := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrintln })

	exec := &fakeExec{}
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "de KW 35" }, scanner)
	return exec, printed
}

func TestREPLDispatchesCommands(t *testing.T) {
	exec, _ := runScript(t, strings.Join([]string{
		"reload",
		"status",
		"list bug fix",
		"l",
		"preview",
		"config",
		"set locale en",
		"set notice_text hello world",
		"saveconfig",
		"add",
		"edit",
		"delete 7",
		"sync",
		"test",
		"audit",
		"analytics",
		"backups",
		"backup",
		"select weekly.zip",
		"restore",
		"export csv",
		"export",
		"import csv",
		"token",
		"lang en",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"reload",
		"status",
		`list "bug fix"`,
		`list ""`,
		"preview",
		"config",
		"set locale=en",
		"set notice_text=hello world",
		"saveconfig",
		"add",
		"edit",
		"delete 7",
		"sync",
		"test",
		"audit",
		"analytics",
		"backups",
		"backup",
		"select weekly.zip",
		"restore",
		"export csv",
		"export json",
		"import csv",
		"token",
		"lang en",
	}, exec.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	exec, printed := runScript(t, "frobnicate\nexit\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, strings.Join(printed, ""), "Unknown command: frobnicate")
}

func TestREPLUsageHints(t *testing.T) {
	exec, printed := runScript(t, "set locale\ndelete\nselect\nlang\nexit\n")

	assert.Empty(t, exec.calls)
	out := strings.Join(printed, "")
	assert.Contains(t, out, "Usage: set <key> <value>")
	assert.Contains(t, out, "Usage: delete <id>")
	assert.Contains(t, out, "Usage: select <file>")
	assert.Contains(t, out, "Usage: lang de|en")
}

func TestREPLBlankLinesAndEOF(t *testing.T) {
	exec, _ := runScript(t, "\n   \nstatus\n")

	// EOF ends the loop without an explicit exit.
	assert.Equal(t, []string{"status"}, exec.calls)
}

func TestREPLPromptShowsStatus(t *testing.T) {
	_, printed := runScript(t, "exit\n")

	assert.Contains(t, printed[0], "dash de KW 35> ")
}
