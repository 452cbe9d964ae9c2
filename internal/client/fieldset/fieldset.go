// Package fieldset is the static catalogue of configuration fields rendered by
// the dashboard and their deterministic grouping. Keys the catalogue does not
// know still round-trip through the config map; they just render ungrouped.
package fieldset

// Field describes one renderable configuration key.
type Field struct {
	Key         string
	Label       string
	Placeholder string
}

// Group is an ordered set of related keys under a title.
type Group struct {
	Title string
	Keys  []string
}

var fields = []Field{
	{Key: "guild_id", Label: "Guild ID"},
	{Key: "channel_id", Label: "Channel ID"},
	{Key: "timezone", Label: "Timezone", Placeholder: "Europe/Berlin"},
	{Key: "schedule_day", Label: "Schedule Day", Placeholder: "MONDAY..SUNDAY"},
	{Key: "schedule_time", Label: "Schedule Time", Placeholder: "HH:mm"},
	{Key: "title_emoji", Label: "Title Emoji"},
	{Key: "title_emoji_id", Label: "Title Emoji ID"},
	{Key: "title_emoji_animated", Label: "Title Emoji Animated"},
	{Key: "title_text", Label: "Title Text"},
	{Key: "added_emoji", Label: "Added Emoji"},
	{Key: "added_emoji_id", Label: "Added Emoji ID"},
	{Key: "added_emoji_animated", Label: "Added Animated"},
	{Key: "changed_emoji", Label: "Changed Emoji"},
	{Key: "changed_emoji_id", Label: "Changed Emoji ID"},
	{Key: "changed_emoji_animated", Label: "Changed Animated"},
	{Key: "removed_emoji", Label: "Removed Emoji"},
	{Key: "removed_emoji_id", Label: "Removed Emoji ID"},
	{Key: "removed_emoji_animated", Label: "Removed Animated"},
	{Key: "notice_emoji", Label: "Notice Emoji"},
	{Key: "notice_emoji_id", Label: "Notice Emoji ID"},
	{Key: "notice_emoji_animated", Label: "Notice Animated"},
	{Key: "notice_text", Label: "Notice Text"},
	{Key: "no_change_text", Label: "No Change Text"},
	{Key: "spacer", Label: "Spacer"},
	{Key: "dashboard_host", Label: "Dashboard Host (Restart)"},
	{Key: "dashboard_port", Label: "Dashboard Port (Restart)"},
	{Key: "audit_enabled", Label: "Audit Enabled"},
	{Key: "audit_max_entries", Label: "Audit Max Entries"},
	{Key: "export_import_enabled", Label: "Export/Import Enabled"},
	{Key: "analytics_enabled", Label: "Analytics Enabled"},
	{Key: "analytics_weeks", Label: "Analytics Weeks"},
	{Key: "i18n_enabled", Label: "i18n Enabled"},
	{Key: "locale", Label: "Locale", Placeholder: "de or en"},
	{Key: "fallback_locale", Label: "Fallback Locale", Placeholder: "de or en"},
	{Key: "backup_enabled", Label: "Backup Enabled"},
	{Key: "backup_directory", Label: "Backup Directory"},
	{Key: "backup_max_files", Label: "Backup Max Files"},
	{Key: "backup_include_audit", Label: "Backup Include Audit"},
}

var groups = []Group{
	{
		Title: "Core",
		Keys: []string{
			"guild_id", "channel_id", "timezone", "schedule_day",
			"schedule_time", "dashboard_host", "dashboard_port",
		},
	},
	{
		Title: "Messages",
		Keys: []string{
			"title_emoji", "title_emoji_id", "title_emoji_animated", "title_text",
			"added_emoji", "added_emoji_id", "added_emoji_animated",
			"changed_emoji", "changed_emoji_id", "changed_emoji_animated",
			"removed_emoji", "removed_emoji_id", "removed_emoji_animated",
			"notice_emoji", "notice_emoji_id", "notice_emoji_animated",
			"notice_text", "no_change_text", "spacer",
		},
	},
	{
		Title: "Features",
		Keys: []string{
			"audit_enabled", "audit_max_entries", "export_import_enabled",
			"analytics_enabled", "analytics_weeks", "i18n_enabled",
			"locale", "fallback_locale",
		},
	},
	{
		Title: "Backup",
		Keys: []string{
			"backup_enabled", "backup_directory", "backup_max_files",
			"backup_include_audit",
		},
	},
}

var fieldByKey = func() map[string]Field {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.Key] = f
	}
	return m
}()

// Fields returns the full ordered catalogue.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Groups returns the ordered grouping. The result is a copy.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		keys := make([]string, len(g.Keys))
		copy(keys, g.Keys)
		out[i] = Group{Title: g.Title, Keys: keys}
	}
	return out
}

// Lookup finds the field catalogue entry for key.
func Lookup(key string) (Field, bool) {
	f, ok := fieldByKey[key]
	return f, ok
}
