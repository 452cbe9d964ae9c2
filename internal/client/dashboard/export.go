package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/eministar/nebidash/internal/client/state"
)

// ExportJSON downloads the full resource bundle including audit, pretty-prints
// it and writes it into the download directory. The store is not touched.
// Returns the written file path.
func (d *Dashboard) ExportJSON(ctx context.Context) (string, error) {
	if d.track.Busy(state.ActionExportJSON) {
		return "", nil
	}
	d.track.SetBusy(state.ActionExportJSON, true)
	defer d.track.SetBusy(state.ActionExportJSON, false)

	var payload map[string]any
	if err := d.api.Request(ctx, http.MethodGet, "/api/export/json?include_audit=true", nil, &payload); err != nil {
		d.fail(state.SlotData, err)
		return "", err
	}

	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		d.fail(state.SlotData, err)
		return "", err
	}

	name := fmt.Sprintf("nebiupdate-export-%d.json", d.now().UnixMilli())
	return d.download(name, pretty)
}

// ExportCSV downloads all entries as CSV text and writes it into the download
// directory. Returns the written file path.
func (d *Dashboard) ExportCSV(ctx context.Context) (string, error) {
	if d.track.Busy(state.ActionExportCSV) {
		return "", nil
	}
	d.track.SetBusy(state.ActionExportCSV, true)
	defer d.track.SetBusy(state.ActionExportCSV, false)

	var payload string
	if err := d.api.Request(ctx, http.MethodGet, "/api/export/csv?scope=all", nil, &payload); err != nil {
		d.fail(state.SlotData, err)
		return "", err
	}

	name := fmt.Sprintf("nebiupdate-updates-%d.csv", d.now().UnixMilli())
	return d.download(name, []byte(payload))
}

// download is the CLI's stand-in for a browser file download.
func (d *Dashboard) download(name string, content []byte) (string, error) {
	path := filepath.Join(d.downloadDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		d.fail(state.SlotData, fmt.Errorf("writing export: %w", err))
		return "", err
	}
	return path, nil
}
