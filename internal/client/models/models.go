// Package models holds the client-side views of the dashboard API resources.
// Field names and JSON tags follow the wire contract of the bot's REST API.
package models

import (
	"fmt"
	"strings"
)

// DashboardStatus is the read-only status snapshot. It is replaced wholesale
// on every reload, never patched.
type DashboardStatus struct {
	Connected           bool   `json:"connected"`
	WeekLabel           string `json:"weekLabel"`
	WeekStart           string `json:"weekStart"`
	WeekEnd             string `json:"weekEnd"`
	UpdateCount         int    `json:"updateCount"`
	ChannelID           string `json:"channelId"`
	GuildID             string `json:"guildId"`
	ScheduleDay         string `json:"scheduleDay"`
	ScheduleTime        string `json:"scheduleTime"`
	Timezone            string `json:"timezone"`
	Locale              string `json:"locale"`
	FallbackLocale      string `json:"fallbackLocale"`
	I18nEnabled         bool   `json:"i18nEnabled"`
	AuditEnabled        bool   `json:"auditEnabled"`
	AnalyticsEnabled    bool   `json:"analyticsEnabled"`
	AnalyticsWeeks      int    `json:"analyticsWeeks"`
	ExportImportEnabled bool   `json:"exportImportEnabled"`
	BackupEnabled       bool   `json:"backupEnabled"`
}

// Update is one change entry of the current week.
type Update struct {
	ID        int64  `json:"id"`
	WeekStart string `json:"weekStart"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// EntryInput is the body of add and edit requests. On edit, empty fields mean
// "leave unchanged"; that interpretation is a server-side contract, the client
// sends the empty strings verbatim.
type EntryInput struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// AuditLogEntry is an immutable audit record.
type AuditLogEntry struct {
	ID         int64  `json:"id"`
	CreatedAt  string `json:"createdAt"`
	Actor      string `json:"actor"`
	Source     string `json:"source"`
	Action     string `json:"action"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Details    string `json:"details"`
}

// AuditPage is the response envelope of GET /api/audit.
type AuditPage struct {
	Enabled bool            `json:"enabled"`
	Entries []AuditLogEntry `json:"entries"`
}

// WeeklyAnalyticsItem aggregates one week of entry counts.
type WeeklyAnalyticsItem struct {
	WeekStart string `json:"weekStart"`
	Added     int    `json:"added"`
	Changed   int    `json:"changed"`
	Removed   int    `json:"removed"`
	Total     int    `json:"total"`
}

type AnalyticsTotals struct {
	Added   int `json:"added"`
	Changed int `json:"changed"`
	Removed int `json:"removed"`
	Total   int `json:"total"`
}

// AnalyticsPayload is recomputed server-side and read-only here.
type AnalyticsPayload struct {
	Enabled     bool                  `json:"enabled"`
	WindowWeeks int                   `json:"windowWeeks"`
	Weeks       []WeeklyAnalyticsItem `json:"weeks"`
	Totals      AnalyticsTotals       `json:"totals"`
}

// BackupItem describes one backup file; FileName is the unique key.
type BackupItem struct {
	FileName       string `json:"fileName"`
	SizeBytes      int64  `json:"sizeBytes"`
	LastModifiedAt string `json:"lastModifiedAt"`
}

// BackupList is the response envelope of GET /api/backups.
type BackupList struct {
	Enabled bool         `json:"enabled"`
	Items   []BackupItem `json:"items"`
}

// RestoreRequest is the body of POST /api/actions/restore.
type RestoreRequest struct {
	File          string `json:"file"`
	ReplaceConfig bool   `json:"replaceConfig"`
	ReplaceAudit  bool   `json:"replaceAudit"`
}

// Recognized entry types. The set is extensible: unrecognized types pass
// through unclassified.
const (
	TypeAdded   = "added"
	TypeChanged = "changed"
	TypeRemoved = "removed"
)

// TypeKind maps an entry type to one of the recognized kinds, or "" when the
// type is not recognized.
func TypeKind(t string) string {
	switch strings.ToLower(t) {
	case TypeAdded:
		return TypeAdded
	case TypeChanged:
		return TypeChanged
	case TypeRemoved:
		return TypeRemoved
	default:
		return ""
	}
}

// FilterUpdates returns the updates whose id, type, content or author contains
// the query, case-insensitively. An empty or whitespace query returns the
// input unchanged.
func FilterUpdates(updates []Update, query string) []Update {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return updates
	}
	out := make([]Update, 0, len(updates))
	for _, u := range updates {
		hay := strings.ToLower(fmt.Sprintf("%d %s %s %s", u.ID, u.Type, u.Content, u.Author))
		if strings.Contains(hay, q) {
			out = append(out, u)
		}
	}
	return out
}
