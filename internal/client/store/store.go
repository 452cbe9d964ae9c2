// Package store is the in-memory cache of the dashboard's server resources.
// It is mutated only by the action orchestrator from completed responses;
// nothing here is optimistic or silently stale.
package store

import (
	"maps"
	"slices"
	"sync"

	"github.com/eministar/nebidash/internal/client/models"
)

type Store struct {
	mu             sync.RWMutex
	status         *models.DashboardStatus
	config         map[string]string
	updates        []models.Update
	preview        string
	audit          []models.AuditLogEntry
	analytics      *models.AnalyticsPayload
	backups        []models.BackupItem
	selectedBackup string
}

func New() *Store {
	return &Store{config: make(map[string]string)}
}

func (s *Store) SetStatus(status *models.DashboardStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Status returns a copy of the current status snapshot, or nil before the
// first successful reload.
func (s *Store) Status() *models.DashboardStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status == nil {
		return nil
	}
	cp := *s.status
	return &cp
}

// SetConfig replaces the whole config map.
func (s *Store) SetConfig(cfg map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = maps.Clone(cfg)
	if s.config == nil {
		s.config = make(map[string]string)
	}
}

// SetConfigValue is the key-scoped form edit; other keys are untouched.
func (s *Store) SetConfigValue(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config[key] = value
}

func (s *Store) ConfigValue(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config[key]
}

func (s *Store) Config() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.config)
}

func (s *Store) SetUpdates(updates []models.Update) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = slices.Clone(updates)
}

func (s *Store) Updates() []models.Update {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.updates)
}

func (s *Store) SetPreview(preview string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preview = preview
}

func (s *Store) Preview() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preview
}

func (s *Store) SetAudit(entries []models.AuditLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = slices.Clone(entries)
}

func (s *Store) Audit() []models.AuditLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.audit)
}

func (s *Store) SetAnalytics(payload *models.AnalyticsPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics = payload
}

func (s *Store) Analytics() *models.AnalyticsPayload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.analytics == nil {
		return nil
	}
	cp := *s.analytics
	cp.Weeks = slices.Clone(s.analytics.Weeks)
	return &cp
}

// SetBackups replaces the backup listing and reconciles the selection: with no
// prior selection the first item is selected; a selection that disappeared
// from the new list resets to the first available item; an empty list clears
// the selection.
func (s *Store) SetBackups(items []models.BackupItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backups = slices.Clone(items)

	if len(items) == 0 {
		s.selectedBackup = ""
		return
	}
	if s.selectedBackup == "" {
		s.selectedBackup = items[0].FileName
		return
	}
	for _, it := range items {
		if it.FileName == s.selectedBackup {
			return
		}
	}
	s.selectedBackup = items[0].FileName
}

func (s *Store) Backups() []models.BackupItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.backups)
}

// SelectBackup marks a file as the restore target. Unknown names are ignored
// so the selection always refers to a listed backup.
func (s *Store) SelectBackup(fileName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.backups {
		if it.FileName == fileName {
			s.selectedBackup = fileName
			return true
		}
	}
	return false
}

func (s *Store) SelectedBackup() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedBackup
}
