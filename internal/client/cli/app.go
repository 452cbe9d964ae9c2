package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/eministar/nebidash/internal/client/api"
	"github.com/eministar/nebidash/internal/client/config"
	"github.com/eministar/nebidash/internal/client/dashboard"
	"github.com/eministar/nebidash/internal/client/locale"
	"github.com/eministar/nebidash/internal/client/session"
	"github.com/eministar/nebidash/internal/client/state"
	"github.com/eministar/nebidash/internal/client/store"
	"github.com/eministar/nebidash/internal/logging"
)

// App wires the dashboard client together for terminal use. The same App
// backs both the cobra one-shot commands and the interactive REPL.
type App struct {
	cfg     *config.Config
	session *session.Session
	store   *store.Store
	track   *state.Tracker
	toast   *state.Notifier
	svc     *dashboard.Dashboard
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	sess, err := session.Load(cfg.SessionFile)
	if err != nil {
		return nil, err
	}

	log, err := logging.NewZapDevelopment()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		session: sess,
		store:   store.New(),
		track:   state.NewTracker(),
		toast:   state.NewNotifier(0),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	a.toast.OnChange(func(t state.Toast) {
		if !t.Visible {
			return
		}
		marker := "*"
		if t.Tone == state.ToneError {
			marker = "!"
		}
		fmt.Fprintf(a.out, "%s %s\n", marker, t.Text)
	})

	a.svc = dashboard.New(dashboard.Deps{
		API:         api.New(cfg.ServerBaseURL, cfg.RequestTimeout, sess),
		Store:       a.store,
		Track:       a.track,
		Toast:       a.toast,
		Session:     sess,
		Log:         log,
		DownloadDir: cfg.DownloadDir,
		Confirm:     a.confirmPrompt,
	})

	return a, nil
}

func (a *App) confirmPrompt(prompt string) bool {
	answer, err := GetSimpleText(a.reader, prompt+" [y/N]", a.out)
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func (a *App) t(key string) string {
	return locale.T(a.svc.ActiveLocale(), key)
}

// Reload refreshes all resources and echoes the global outcome.
func (a *App) Reload(ctx context.Context) error {
	err := a.svc.ReloadAll(ctx)
	if msg := a.track.Message(state.SlotGlobal); msg.Text != "" {
		fmt.Fprintf(a.out, "[%s] %s\n", msg.Tone, msg.Text)
	}
	return err
}

func (a *App) Sync(ctx context.Context) error {
	return a.svc.SendSync(ctx)
}

func (a *App) Test(ctx context.Context) error {
	err := a.svc.SendTest(ctx)
	if msg := a.track.Message(state.SlotAction); msg.Text != "" {
		fmt.Fprintf(a.out, "[%s] %s\n", msg.Tone, msg.Text)
	}
	return err
}

// Add prompts for the entry fields and posts them.
func (a *App) Add(ctx context.Context) error {
	form := a.svc.AddForm()

	entryType, err := GetSimpleText(a.reader, fmt.Sprintf("Type [%s]", form.Type), a.out)
	if err != nil {
		return err
	}
	if entryType != "" {
		form.Type = entryType
	}

	form.Text, err = GetSimpleText(a.reader, "Text", a.out)
	if err != nil {
		return err
	}

	author, err := GetSimpleText(a.reader, fmt.Sprintf("Author [%s]", form.Author), a.out)
	if err != nil {
		return err
	}
	if author != "" {
		form.Author = author
	}

	a.svc.SetAddForm(form)
	return a.svc.AddEntry(ctx)
}

// Edit prompts for an id plus replacement fields. Blank fields are sent as
// empty strings, which the server reads as "leave unchanged".
func (a *App) Edit(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Entry id", a.out)
	if err != nil {
		return err
	}
	entryType, err := GetSimpleText(a.reader, "Type (blank keeps current)", a.out)
	if err != nil {
		return err
	}
	text, err := GetSimpleText(a.reader, "Text (blank keeps current)", a.out)
	if err != nil {
		return err
	}
	author, err := GetSimpleText(a.reader, "Author (blank keeps current)", a.out)
	if err != nil {
		return err
	}

	a.svc.SetEditForm(dashboard.EditForm{ID: id, Type: entryType, Text: text, Author: author})
	return a.svc.EditEntry(ctx)
}

func (a *App) Delete(ctx context.Context, idArg string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(idArg), 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return nil
	}
	return a.svc.DeleteEntry(ctx, id)
}

func (a *App) SaveConfigValues(ctx context.Context) error {
	err := a.svc.SaveConfig(ctx)
	if msg := a.track.Message(state.SlotConfig); msg.Text != "" {
		fmt.Fprintf(a.out, "[%s] %s\n", msg.Tone, msg.Text)
	}
	return err
}

func (a *App) SetConfigValue(key, value string) {
	a.svc.SetConfigValue(key, value)
}

func (a *App) Backup(ctx context.Context) error {
	return a.svc.CreateBackup(ctx)
}

func (a *App) SelectBackup(name string) {
	if !a.store.SelectBackup(name) {
		fmt.Fprintf(a.out, "No such backup: %s\n", name)
	}
}

func (a *App) Restore(ctx context.Context) error {
	if a.store.SelectedBackup() == "" {
		fmt.Fprintln(a.out, "No backup selected.")
		return nil
	}
	return a.svc.RestoreBackup(ctx)
}

// Export downloads the named format ("json" or "csv") into the download dir.
func (a *App) Export(ctx context.Context, kind string) error {
	var (
		path string
		err  error
	)
	switch kind {
	case "csv":
		path, err = a.svc.ExportCSV(ctx)
	default:
		path, err = a.svc.ExportJSON(ctx)
	}
	if err == nil && path != "" {
		fmt.Fprintf(a.out, "Saved %s\n", path)
	}
	return err
}

// Import reads a multiline payload from the terminal and sends it.
func (a *App) Import(ctx context.Context, kind string) error {
	payload, err := GetMultiline(a.reader, "Paste "+strings.ToUpper(kind)+" payload", a.out)
	if err != nil {
		return err
	}
	if kind == "csv" {
		return a.svc.ImportCSV(ctx, payload)
	}
	return a.svc.ImportJSON(ctx, payload)
}

// ImportPayload sends an already-read payload, used by the one-shot commands.
func (a *App) ImportPayload(ctx context.Context, kind, payload string) error {
	if kind == "csv" {
		return a.svc.ImportCSV(ctx, payload)
	}
	return a.svc.ImportJSON(ctx, payload)
}

func (a *App) SaveToken(ctx context.Context) error {
	token, err := GetToken(a.out)
	if err != nil {
		return err
	}
	return a.svc.SaveToken(token)
}

func (a *App) Lang(value string) error {
	return a.svc.SwitchLocale(value)
}
