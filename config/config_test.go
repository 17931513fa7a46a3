package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "farmdesk.db", cfg.DBPath)
	assert.Equal(t, 15*time.Minute, cfg.S3.Expiry)
	assert.False(t, cfg.S3.Enabled())
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("S3_BUCKET", "farm-photos")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("S3_ACCESS_KEY", "AKIA")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("UPLOAD_EXPIRY", "5m")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "eu-west-1", cfg.S3.Region)
	assert.Equal(t, 5*time.Minute, cfg.S3.Expiry)
	assert.True(t, cfg.S3.Enabled())
	assert.NotContains(t, cfg.String(), "secret")
}

func TestParse_BadDuration(t *testing.T) {
	t.Setenv("UPLOAD_EXPIRY", "soon")
	_, err := Parse()
	require.Error(t, err)
}
