package store

import (
	"testing"

	"github.com/eministar/nebidash/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestSetBackups_DefaultsToFirstItem(t *testing.T) {
	s := New()
	s.SetBackups([]models.BackupItem{{FileName: "a"}, {FileName: "b"}})
	assert.Equal(t, "a", s.SelectedBackup())
}

func TestSetBackups_KeepsExistingSelection(t *testing.T) {
	s := New()
	s.SetBackups([]models.BackupItem{{FileName: "a"}, {FileName: "b"}})
	assert.True(t, s.SelectBackup("b"))

	s.SetBackups([]models.BackupItem{{FileName: "a"}, {FileName: "b"}, {FileName: "c"}})
	assert.Equal(t, "b", s.SelectedBackup())
}

func TestSetBackups_StaleSelectionResetsToFirst(t *testing.T) {
	s := New()
	s.SetBackups([]models.BackupItem{{FileName: "a"}, {FileName: "b"}})
	assert.True(t, s.SelectBackup("b"))

	s.SetBackups([]models.BackupItem{{FileName: "c"}})
	assert.Equal(t, "c", s.SelectedBackup())
}

func TestSetBackups_EmptyListClearsSelection(t *testing.T) {
	s := New()
	s.SetBackups([]models.BackupItem{{FileName: "a"}})
	assert.Equal(t, "a", s.SelectedBackup())

	s.SetBackups(nil)
	assert.Equal(t, "", s.SelectedBackup())
}

func TestSelectBackup_UnknownNameIgnored(t *testing.T) {
	s := New()
	s.SetBackups([]models.BackupItem{{FileName: "a"}})
	assert.False(t, s.SelectBackup("ghost"))
	assert.Equal(t, "a", s.SelectedBackup())
}

func TestSetConfigValue_IsKeyScoped(t *testing.T) {
	s := New()
	s.SetConfig(map[string]string{"locale": "de", "timezone": "Europe/Berlin"})

	s.SetConfigValue("locale", "en")

	assert.Equal(t, "en", s.ConfigValue("locale"))
	assert.Equal(t, "Europe/Berlin", s.ConfigValue("timezone"))
}

func TestConfig_ReturnsCopy(t *testing.T) {
	s := New()
	s.SetConfig(map[string]string{"locale": "de"})

	cfg := s.Config()
	cfg["locale"] = "mutated"

	assert.Equal(t, "de", s.ConfigValue("locale"))
}

func TestStatus_NilBeforeFirstLoadThenCopied(t *testing.T) {
	s := New()
	assert.Nil(t, s.Status())

	s.SetStatus(&models.DashboardStatus{WeekLabel: "KW 35"})
	got := s.Status()
	got.WeekLabel = "mutated"

	assert.Equal(t, "KW 35", s.Status().WeekLabel)
}
