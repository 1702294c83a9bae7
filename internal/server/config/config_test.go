package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "gophblog.db", cfg.DatabasePath)
	assert.Equal(t, "dev", cfg.SessionSecret)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestApplyEnv_OverridesFlagValues(t *testing.T) {
	// Окружение применяется последним и перекрывает значения флагов
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.Addr = ":9090" // как будто задано флагом -a
	cfg.SessionTTL = time.Hour

	t.Setenv("ADDRESS", ":7070")
	t.Setenv("SESSION_TTL", "30m")
	cfg.applyEnv()

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	// Переменные без значения в окружении не трогаются
	assert.Equal(t, "gophblog.db", cfg.DatabasePath)
	assert.Equal(t, "dev", cfg.SessionSecret)
}

func TestApplyEnv_IgnoresInvalidTTL(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	t.Setenv("SESSION_TTL", "not-a-duration")
	cfg.applyEnv()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
