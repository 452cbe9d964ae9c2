package cli

import (
	"fmt"

	"github.com/eministar/nebidash/internal/client/fieldset"
	"github.com/eministar/nebidash/internal/client/models"
)

func (a *App) ShowStatus() {
	s := a.store.Status()
	if s == nil {
		fmt.Fprintln(a.out, "No status loaded yet. Run 'reload' first.")
		return
	}
	conn := "Offline"
	if s.Connected {
		conn = "Connected"
	}
	fmt.Fprintf(a.out, "%s\n", a.t("title"))
	fmt.Fprintf(a.out, "Bot:      %s\n", conn)
	fmt.Fprintf(a.out, "Week:     %s (%s - %s)\n", s.WeekLabel, s.WeekStart, s.WeekEnd)
	fmt.Fprintf(a.out, "Updates:  %d\n", s.UpdateCount)
	fmt.Fprintf(a.out, "Guild:    %s\n", orDash(s.GuildID))
	fmt.Fprintf(a.out, "Channel:  %s\n", orDash(s.ChannelID))
	fmt.Fprintf(a.out, "Schedule: %s %s (%s)\n", s.ScheduleDay, s.ScheduleTime, s.Timezone)
	fmt.Fprintf(a.out, "Locale:   %s (fallback %s)\n", s.Locale, s.FallbackLocale)
}

func (a *App) ListUpdates(query string) {
	updates := models.FilterUpdates(a.store.Updates(), query)
	if len(updates) == 0 {
		fmt.Fprintln(a.out, "No entries.")
		return
	}
	fmt.Fprintf(a.out, "%s:\n", a.t("updates"))
	for _, u := range updates {
		fmt.Fprintf(a.out, "  #%d [%s] %s - %s\n", u.ID, a.typeLabel(u.Type), u.Content, u.Author)
	}
}

// typeLabel localizes recognized entry types; unknown types pass through.
func (a *App) typeLabel(t string) string {
	switch models.TypeKind(t) {
	case models.TypeAdded:
		return a.t("add")
	case models.TypeChanged:
		return a.t("changed")
	case models.TypeRemoved:
		return a.t("removed")
	default:
		return t
	}
}

func (a *App) ShowPreview() {
	preview := a.store.Preview()
	if preview == "" {
		fmt.Fprintln(a.out, "No preview loaded yet.")
		return
	}
	fmt.Fprintf(a.out, "%s:\n%s\n", a.t("preview"), preview)
}

func (a *App) ShowConfig() {
	cfg := a.store.Config()
	if len(cfg) == 0 {
		fmt.Fprintln(a.out, "No config loaded yet. Run 'reload' first.")
		return
	}
	for _, group := range fieldset.Groups() {
		fmt.Fprintf(a.out, "%s:\n", group.Title)
		for _, key := range group.Keys {
			field, _ := fieldset.Lookup(key)
			value := cfg[key]
			if value == "" && field.Placeholder != "" {
				value = "(" + field.Placeholder + ")"
			}
			fmt.Fprintf(a.out, "  %-24s %s = %s\n", field.Label, key, value)
		}
	}
}

func (a *App) ShowAudit() {
	entries := a.store.Audit()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No audit entries.")
		return
	}
	fmt.Fprintf(a.out, "%s:\n", a.t("audit"))
	for _, e := range entries {
		fmt.Fprintf(a.out, "  #%d %s %s/%s %s %s#%s %s\n",
			e.ID, e.CreatedAt, e.Actor, e.Source, e.Action, e.EntityType, e.EntityID, e.Details)
	}
}

func (a *App) ShowAnalytics() {
	p := a.store.Analytics()
	if p == nil {
		fmt.Fprintln(a.out, "No analytics loaded yet.")
		return
	}
	if !p.Enabled {
		fmt.Fprintln(a.out, "Analytics disabled.")
		return
	}
	fmt.Fprintf(a.out, "%s (%d weeks):\n", a.t("analytics"), p.WindowWeeks)
	for _, w := range p.Weeks {
		fmt.Fprintf(a.out, "  %s  +%d ~%d -%d = %d\n", w.WeekStart, w.Added, w.Changed, w.Removed, w.Total)
	}
	fmt.Fprintf(a.out, "  total +%d ~%d -%d = %d\n",
		p.Totals.Added, p.Totals.Changed, p.Totals.Removed, p.Totals.Total)
}

func (a *App) ShowBackups() {
	items := a.store.Backups()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No backups.")
		return
	}
	selected := a.store.SelectedBackup()
	for _, it := range items {
		marker := " "
		if it.FileName == selected {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %d bytes  %s\n", marker, it.FileName, it.SizeBytes, it.LastModifiedAt)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
