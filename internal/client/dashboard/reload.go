package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eministar/nebidash/internal/client/models"
	"github.com/eministar/nebidash/internal/client/state"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// auditPageLimit caps how many audit records one load fetches.
const auditPageLimit = 120

// ReloadAll refreshes every server resource in two phases. Phase 1 fetches
// status, config, current-week updates and preview concurrently; only when all
// four succeed does phase 2 fetch audit log, analytics and backups. The split
// keeps a phase-2 failure from hiding phase-1 results, and gets the primary
// data to the UI as early as possible.
//
// The first failure wins and aborts the call, but assignments from an already
// completed phase are not rolled back. A reload started while a newer one is
// running never applies its results (newest wins): both phases fetch into
// locals and re-check the generation before touching the store. The busy flag
// is cleared on every path.
func (d *Dashboard) ReloadAll(ctx context.Context) error {
	if d.track.Busy(state.ActionReload) {
		return nil
	}
	gen := d.reloadGen.Add(1)
	log := d.log.With("reload_id", uuid.NewString())

	d.track.SetBusy(state.ActionReload, true)
	defer d.track.SetBusy(state.ActionReload, false)

	var (
		status    models.DashboardStatus
		rawConfig map[string]any
		updates   []models.Update
		preview   string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.api.Request(gctx, http.MethodGet, "/api/status", nil, &status)
	})
	g.Go(func() error {
		return d.api.Request(gctx, http.MethodGet, "/api/config", nil, &rawConfig)
	})
	g.Go(func() error {
		return d.api.Request(gctx, http.MethodGet, "/api/updates/current", nil, &updates)
	})
	g.Go(func() error {
		return d.api.Request(gctx, http.MethodGet, "/api/preview/current", nil, &preview)
	})
	if err := g.Wait(); err != nil {
		log.Error(ctx, "reload failed", "phase", 1, "error", err)
		d.fail(state.SlotGlobal, err)
		return err
	}

	if d.reloadGen.Load() != gen {
		log.Warn(ctx, "reload superseded, discarding results")
		return nil
	}

	d.store.SetStatus(&status)
	d.store.SetConfig(models.NormalizeConfig(rawConfig))
	d.store.SetUpdates(updates)
	d.store.SetPreview(preview)

	var (
		audit     []models.AuditLogEntry
		analytics models.AnalyticsPayload
		backups   []models.BackupItem
	)

	g2, gctx2 := errgroup.WithContext(ctx)
	g2.Go(func() error {
		var err error
		audit, err = d.fetchAudit(gctx2)
		return err
	})
	g2.Go(func() error {
		return d.api.Request(gctx2, http.MethodGet, "/api/analytics", nil, &analytics)
	})
	g2.Go(func() error {
		var err error
		backups, err = d.fetchBackups(gctx2)
		return err
	})
	if err := g2.Wait(); err != nil {
		log.Error(ctx, "reload failed", "phase", 2, "error", err)
		d.fail(state.SlotGlobal, err)
		return err
	}

	if d.reloadGen.Load() != gen {
		log.Warn(ctx, "reload superseded, discarding results")
		return nil
	}

	d.store.SetAudit(audit)
	d.store.SetAnalytics(&analytics)
	d.store.SetBackups(backups)

	log.Info(ctx, "reload finished", "updates", len(updates))
	d.track.SetMessage(state.SlotGlobal, "Dashboard synced.", state.ToneInfo)
	return nil
}

func (d *Dashboard) fetchAudit(ctx context.Context) ([]models.AuditLogEntry, error) {
	var page models.AuditPage
	path := fmt.Sprintf("/api/audit?limit=%d", auditPageLimit)
	if err := d.api.Request(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	if page.Entries == nil {
		return []models.AuditLogEntry{}, nil
	}
	return page.Entries, nil
}

func (d *Dashboard) fetchBackups(ctx context.Context) ([]models.BackupItem, error) {
	var list models.BackupList
	if err := d.api.Request(ctx, http.MethodGet, "/api/backups", nil, &list); err != nil {
		return nil, err
	}
	if list.Items == nil {
		return []models.BackupItem{}, nil
	}
	return list.Items, nil
}

// loadBackups refreshes only the backup listing, for actions that do not need
// a full reload.
func (d *Dashboard) loadBackups(ctx context.Context) error {
	items, err := d.fetchBackups(ctx)
	if err != nil {
		return err
	}
	d.store.SetBackups(items)
	return nil
}
