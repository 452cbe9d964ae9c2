package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/eministar/nebidash/internal/client/models"
	"github.com/eministar/nebidash/internal/client/state"
)

// emptyBody is the "{}" payload of the parameterless bot actions.
var emptyBody = struct{}{}

// SendSync asks the bot to repost the week message, then refreshes everything.
func (d *Dashboard) SendSync(ctx context.Context) error {
	if d.track.Busy(state.ActionSync) {
		return nil
	}
	d.track.SetBusy(state.ActionSync, true)
	defer d.track.SetBusy(state.ActionSync, false)

	if err := d.api.Request(ctx, http.MethodPost, "/api/actions/sync", emptyBody, nil); err != nil {
		d.fail(state.SlotAction, err)
		return err
	}
	return d.ReloadAll(ctx)
}

// SendTest triggers a test message. Message only, no reload.
func (d *Dashboard) SendTest(ctx context.Context) error {
	if d.track.Busy(state.ActionTest) {
		return nil
	}
	d.track.SetBusy(state.ActionTest, true)
	defer d.track.SetBusy(state.ActionTest, false)

	if err := d.api.Request(ctx, http.MethodPost, "/api/actions/test", emptyBody, nil); err != nil {
		d.fail(state.SlotAction, err)
		return err
	}
	d.track.SetMessage(state.SlotAction, "Test triggered.", state.ToneInfo)
	return nil
}

// SaveConfig sends the whole config map as a single replace-all write.
func (d *Dashboard) SaveConfig(ctx context.Context) error {
	if d.track.Busy(state.ActionConfig) {
		return nil
	}
	d.track.SetBusy(state.ActionConfig, true)
	defer d.track.SetBusy(state.ActionConfig, false)

	if err := d.api.Request(ctx, http.MethodPut, "/api/config", d.store.Config(), nil); err != nil {
		d.fail(state.SlotConfig, err)
		return err
	}
	err := d.ReloadAll(ctx)
	d.track.SetMessage(state.SlotConfig, "Config saved.", state.ToneInfo)
	return err
}

// AddEntry posts the add form. Empty text is allowed through; rejecting it is
// the server's call. On success the text field is cleared and everything
// reloads.
func (d *Dashboard) AddEntry(ctx context.Context) error {
	if d.track.Busy(state.ActionAdd) {
		return nil
	}
	d.track.SetBusy(state.ActionAdd, true)
	defer d.track.SetBusy(state.ActionAdd, false)

	form := d.AddForm()
	input := models.EntryInput{Type: form.Type, Text: form.Text, Author: form.Author}
	if strings.TrimSpace(input.Author) == "" {
		input.Author = defaultAuthor
	}

	if err := d.api.Request(ctx, http.MethodPost, "/api/updates/current", input, nil); err != nil {
		d.fail(state.SlotAdd, err)
		return err
	}

	form.Text = ""
	d.SetAddForm(form)
	return d.ReloadAll(ctx)
}

// EditEntry puts the edit form against its entry. An id that is not a positive
// integer rejects the action client-side before any network call; the no-op is
// silent by design.
func (d *Dashboard) EditEntry(ctx context.Context) error {
	form := d.EditForm()
	id, err := strconv.ParseInt(strings.TrimSpace(form.ID), 10, 64)
	if err != nil || id <= 0 {
		return nil
	}

	if d.track.Busy(state.ActionEdit) {
		return nil
	}
	d.track.SetBusy(state.ActionEdit, true)
	defer d.track.SetBusy(state.ActionEdit, false)

	input := models.EntryInput{Type: form.Type, Text: form.Text, Author: form.Author}
	path := fmt.Sprintf("/api/updates/current/%d", id)
	if err := d.api.Request(ctx, http.MethodPut, path, input, nil); err != nil {
		d.fail(state.SlotEdit, err)
		return err
	}
	return d.ReloadAll(ctx)
}

// DeleteEntry removes one entry after an explicit confirmation. Declining
// issues no request and changes no state.
func (d *Dashboard) DeleteEntry(ctx context.Context, id int64) error {
	if !d.confirm(fmt.Sprintf("Delete #%d?", id)) {
		return nil
	}

	path := fmt.Sprintf("/api/updates/current/%d", id)
	if err := d.api.Request(ctx, http.MethodDelete, path, nil, nil); err != nil {
		d.fail(state.SlotAction, err)
		return err
	}
	return d.ReloadAll(ctx)
}

// ImportJSON replaces the week's data with an exported JSON bundle. An empty
// payload is a no-op.
func (d *Dashboard) ImportJSON(ctx context.Context, payload string) error {
	if strings.TrimSpace(payload) == "" {
		return nil
	}
	if d.track.Busy(state.ActionImportJSON) {
		return nil
	}
	d.track.SetBusy(state.ActionImportJSON, true)
	defer d.track.SetBusy(state.ActionImportJSON, false)

	path := "/api/import/json?replace_data=true&replace_config=false&replace_audit=true"
	if err := d.api.Request(ctx, http.MethodPost, path, payload, nil); err != nil {
		d.fail(state.SlotData, err)
		return err
	}
	return d.ReloadAll(ctx)
}

// ImportCSV imports entries from CSV text. An empty payload is a no-op.
func (d *Dashboard) ImportCSV(ctx context.Context, payload string) error {
	if strings.TrimSpace(payload) == "" {
		return nil
	}
	if d.track.Busy(state.ActionImportCSV) {
		return nil
	}
	d.track.SetBusy(state.ActionImportCSV, true)
	defer d.track.SetBusy(state.ActionImportCSV, false)

	if err := d.api.Request(ctx, http.MethodPost, "/api/import/csv", payload, nil); err != nil {
		d.fail(state.SlotData, err)
		return err
	}
	return d.ReloadAll(ctx)
}

// CreateBackup asks the bot to write a backup, then refreshes only the backup
// listing.
func (d *Dashboard) CreateBackup(ctx context.Context) error {
	if d.track.Busy(state.ActionBackup) {
		return nil
	}
	d.track.SetBusy(state.ActionBackup, true)
	defer d.track.SetBusy(state.ActionBackup, false)

	if err := d.api.Request(ctx, http.MethodPost, "/api/actions/backup", emptyBody, nil); err != nil {
		d.fail(state.SlotData, err)
		return err
	}
	if err := d.loadBackups(ctx); err != nil {
		d.fail(state.SlotData, err)
		return err
	}
	return nil
}

// RestoreBackup restores the selected backup file. With nothing selected the
// action is a no-op: no request, no busy change, no message.
func (d *Dashboard) RestoreBackup(ctx context.Context) error {
	selected := d.store.SelectedBackup()
	if selected == "" {
		return nil
	}
	if d.track.Busy(state.ActionRestore) {
		return nil
	}
	d.track.SetBusy(state.ActionRestore, true)
	defer d.track.SetBusy(state.ActionRestore, false)

	body := models.RestoreRequest{File: selected, ReplaceConfig: false, ReplaceAudit: true}
	if err := d.api.Request(ctx, http.MethodPost, "/api/actions/restore", body, nil); err != nil {
		d.fail(state.SlotData, err)
		return err
	}
	return d.ReloadAll(ctx)
}
