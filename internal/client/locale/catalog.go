package locale

// Minimal label catalogue for CLI output. Unknown keys fall back to the key
// itself, so missing labels degrade visibly instead of breaking.
var catalog = map[Locale]map[string]string{
	German: {
		"title":         "NebiUpdate Dashboard",
		"reload":        "Neu laden",
		"sync":          "Sync senden",
		"test":          "Test senden",
		"updates":       "Eintraege",
		"preview":       "Preview",
		"config":        "Config",
		"analytics":     "Analytics",
		"audit":         "Audit Log",
		"tools":         "Export/Import/Backup",
		"add":           "Neu",
		"changed":       "Geaendert",
		"removed":       "Entfernt",
		"save":          "Speichern",
		"backupCreate":  "Backup erstellen",
		"backupRestore": "Backup wiederherstellen",
		"language":      "Sprache",
	},
	English: {
		"title":         "NebiUpdate Dashboard",
		"reload":        "Reload",
		"sync":          "Send sync",
		"test":          "Send test",
		"updates":       "Entries",
		"preview":       "Preview",
		"config":        "Config",
		"analytics":     "Analytics",
		"audit":         "Audit Log",
		"tools":         "Export/Import/Backup",
		"add":           "Added",
		"changed":       "Changed",
		"removed":       "Removed",
		"save":          "Save",
		"backupCreate":  "Create backup",
		"backupRestore": "Restore backup",
		"language":      "Language",
	},
}

// T returns the label for key in the given locale, or the key itself when no
// label exists.
func T(l Locale, key string) string {
	if m, ok := catalog[l]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
