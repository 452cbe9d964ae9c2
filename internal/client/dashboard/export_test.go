package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eministar/nebidash/internal/client/api"
	"github.com/eministar/nebidash/internal/client/session"
	"github.com/eministar/nebidash/internal/client/state"
	"github.com/eministar/nebidash/internal/client/store"
	"github.com/eministar/nebidash/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newExportFixture builds a Dashboard with a pinned clock so export file
// names are deterministic.
func newExportFixture(t *testing.T, at time.Time) (*fixture, string) {
	t.Helper()

	stub := newStubServer()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	tmpDir := t.TempDir()
	sess, err := session.Load(filepath.Join(tmpDir, "session.json"))
	require.NoError(t, err)

	st := store.New()
	tr := state.NewTracker()
	toast := state.NewNotifier(time.Minute)

	dash := New(Deps{
		API:         api.New(srv.URL, 5*time.Second, sess),
		Store:       st,
		Track:       tr,
		Toast:       toast,
		Session:     sess,
		Log:         logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		DownloadDir: tmpDir,
		Now:         func() time.Time { return at },
	})

	return &fixture{dash: dash, store: st, track: tr, toast: toast, stub: stub, tmpDir: tmpDir}, tmpDir
}

func TestExportJSON_WritesTimestampedPrettyFile(t *testing.T) {
	at := time.UnixMilli(1756387200000)
	f, dir := newExportFixture(t, at)

	path, err := f.dash.ExportJSON(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "nebiupdate-export-1756387200000.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  ", "payload is pretty-printed")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "updates")
	assert.Contains(t, payload, "audit")

	assert.False(t, f.track.Busy(state.ActionExportJSON))
	assert.Nil(t, f.store.Status(), "export does not touch the store")
}

func TestExportCSV_WritesRawServerText(t *testing.T) {
	at := time.UnixMilli(42000)
	f, dir := newExportFixture(t, at)

	path, err := f.dash.ExportCSV(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "nebiupdate-updates-42000.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,type,content\n1,added,hello\n", string(raw))
	assert.False(t, f.track.Busy(state.ActionExportCSV))
}

func TestExportJSON_ServerErrorReportsToDataSlot(t *testing.T) {
	f, _ := newExportFixture(t, time.UnixMilli(1))
	f.stub.failPath("/api/export/json", http.StatusForbidden)

	path, err := f.dash.ExportJSON(context.Background())
	require.Error(t, err)
	assert.Empty(t, path)

	msg := f.track.Message(state.SlotData)
	assert.Equal(t, state.ToneError, msg.Tone)
	assert.Contains(t, msg.Text, "HTTP 403")
	assert.True(t, f.toast.Current().Visible)
}
