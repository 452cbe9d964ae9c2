// Package dashboard orchestrates every user-triggered operation of the
// dashboard client. It is the only writer of the resource store: each action
// sets its busy flag, talks to the API, refreshes dependent resources, records
// its outcome in a message slot plus the transient notification, and clears
// the busy flag on the way out whatever happened.
package dashboard

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eministar/nebidash/internal/client/api"
	"github.com/eministar/nebidash/internal/client/locale"
	"github.com/eministar/nebidash/internal/client/models"
	"github.com/eministar/nebidash/internal/client/session"
	"github.com/eministar/nebidash/internal/client/state"
	"github.com/eministar/nebidash/internal/client/store"
	"github.com/eministar/nebidash/internal/logging"
)

// EntryForm holds the add-entry input fields.
type EntryForm struct {
	Type   string
	Text   string
	Author string
}

// EditForm holds the edit-entry input fields. ID stays a string until the
// action validates it; empty Type/Text/Author mean "leave unchanged" on the
// server side.
type EditForm struct {
	ID     string
	Type   string
	Text   string
	Author string
}

// Deps are the collaborators a Dashboard is built from.
type Deps struct {
	API     *api.Client
	Store   *store.Store
	Track   *state.Tracker
	Toast   *state.Notifier
	Session *session.Session
	Log     logging.Logger

	// DownloadDir receives export files.
	DownloadDir string
	// Confirm guards destructive actions. A nil Confirm declines everything.
	Confirm func(prompt string) bool
	// Now is a test seam for export file naming.
	Now func() time.Time
}

type Dashboard struct {
	api     *api.Client
	store   *store.Store
	track   *state.Tracker
	toast   *state.Notifier
	session *session.Session
	log     logging.Logger

	downloadDir string
	confirm     func(prompt string) bool
	now         func() time.Time

	// reloadGen orders overlapping reloads so a stale one never overwrites
	// the results of a newer one.
	reloadGen atomic.Uint64

	formMu   sync.Mutex
	addForm  EntryForm
	editForm EditForm
}

func New(deps Deps) *Dashboard {
	d := &Dashboard{
		api:         deps.API,
		store:       deps.Store,
		track:       deps.Track,
		toast:       deps.Toast,
		session:     deps.Session,
		log:         deps.Log,
		downloadDir: deps.DownloadDir,
		confirm:     deps.Confirm,
		now:         deps.Now,
		addForm:     EntryForm{Type: models.TypeAdded, Author: defaultAuthor},
		editForm:    EditForm{Author: defaultAuthor},
	}
	if d.confirm == nil {
		d.confirm = func(string) bool { return false }
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.downloadDir == "" {
		d.downloadDir = "."
	}
	return d
}

const defaultAuthor = "Dashboard"

// fail funnels an action-level error into its message slot and the toast.
// The two are always updated together.
func (d *Dashboard) fail(slot state.Slot, err error) {
	d.track.SetMessage(slot, err.Error(), state.ToneError)
	d.toast.Show(err.Error(), state.ToneError)
}

// ActiveLocale resolves the display locale from the persisted override, the
// loaded config and the server status.
func (d *Dashboard) ActiveLocale() locale.Locale {
	statusLocale := ""
	if s := d.store.Status(); s != nil {
		statusLocale = s.Locale
	}
	return locale.Resolve(d.session.LocaleOverride(), d.store.ConfigValue("locale"), statusLocale)
}

// SaveToken trims and persists the token, confirming via the toast. The next
// request picks the new token up automatically.
func (d *Dashboard) SaveToken(token string) error {
	if err := d.session.SetToken(trimToken(token)); err != nil {
		d.toast.Show(err.Error(), state.ToneError)
		return err
	}
	d.toast.Show("Token saved.", state.ToneInfo)
	return nil
}

// SwitchLocale persists a locale override, coerced into the closed de/en set.
func (d *Dashboard) SwitchLocale(value string) error {
	return d.session.SetLocaleOverride(string(locale.Coerce(value)))
}

func (d *Dashboard) AddForm() EntryForm {
	d.formMu.Lock()
	defer d.formMu.Unlock()
	return d.addForm
}

func (d *Dashboard) SetAddForm(f EntryForm) {
	d.formMu.Lock()
	defer d.formMu.Unlock()
	d.addForm = f
}

func (d *Dashboard) EditForm() EditForm {
	d.formMu.Lock()
	defer d.formMu.Unlock()
	return d.editForm
}

func (d *Dashboard) SetEditForm(f EditForm) {
	d.formMu.Lock()
	defer d.formMu.Unlock()
	d.editForm = f
}

// FillEditForm primes the edit form from an existing entry.
func (d *Dashboard) FillEditForm(u models.Update) {
	author := u.Author
	if author == "" {
		author = defaultAuthor
	}
	d.SetEditForm(EditForm{
		ID:     formatID(u.ID),
		Type:   u.Type,
		Text:   u.Content,
		Author: author,
	})
}

// SetConfigValue applies a key-scoped config form edit; other keys stay
// untouched until SaveConfig sends the whole map.
func (d *Dashboard) SetConfigValue(key, value string) {
	d.store.SetConfigValue(key, value)
}

func trimToken(token string) string {
	return strings.TrimSpace(token)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
