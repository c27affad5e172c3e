package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "trivia")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "trivia-api", cfg.Name)
	assert.Equal(t, 10, cfg.Trivia.QuestionsPerPage)
	assert.Equal(t, 10*time.Minute, cfg.Trivia.CategoryCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "opentdb", cfg.Import.Source)
	assert.Equal(t,
		"host=db port=5432 user=trivia password=secret dbname=trivia sslmode=disable",
		cfg.Postgres.DSN())
	assert.Equal(t,
		"host=db port=5432 user=trivia password=secret dbname=trivia sslmode=disable pool_max_conns=10",
		cfg.Postgres.ConnString())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TRIVIA_QUESTIONS_PER_PAGE", "25")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Trivia.QuestionsPerPage)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoadMissingPostgres(t *testing.T) {
	t.Setenv("PG_HOST", "")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "trivia")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRejectsNonPositivePageSize(t *testing.T) {
	setRequired(t)
	t.Setenv("TRIVIA_QUESTIONS_PER_PAGE", "0")

	_, err := Load(context.Background())
	assert.ErrorContains(t, err, "TRIVIA_QUESTIONS_PER_PAGE")
}
