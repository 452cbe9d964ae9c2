package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeConfig_StringifiesEverything(t *testing.T) {
	in := map[string]any{
		"guild_id":        "123",
		"analytics_weeks": float64(8),
		"audit_enabled":   true,
		"i18n_enabled":    false,
		"notice_text":     nil,
		"spacer":          "",
		"port":            float64(8080),
		"ratio":           float64(2.5),
	}

	out := NormalizeConfig(in)

	assert.Equal(t, "123", out["guild_id"])
	assert.Equal(t, "8", out["analytics_weeks"])
	assert.Equal(t, "true", out["audit_enabled"])
	assert.Equal(t, "false", out["i18n_enabled"])
	assert.Equal(t, "", out["notice_text"])
	assert.Equal(t, "", out["spacer"])
	assert.Equal(t, "8080", out["port"])
	assert.Equal(t, "2.5", out["ratio"])
}

func TestNormalizeConfig_Idempotent(t *testing.T) {
	in := map[string]any{
		"a": float64(1),
		"b": true,
		"c": nil,
		"d": "text",
	}

	once := NormalizeConfig(in)

	again := make(map[string]any, len(once))
	for k, v := range once {
		again[k] = v
	}
	twice := NormalizeConfig(again)

	assert.Equal(t, once, twice)
}

func TestNormalizeConfig_EmptyInput(t *testing.T) {
	out := NormalizeConfig(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
