package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSNValuePrefersRawDSN(t *testing.T) {
	cfg := AppConfig{DSN: " user:pass@tcp(db:3306)/app "}
	assert.Equal(t, "user:pass@tcp(db:3306)/app", cfg.DSNValue())
}

func TestDSNValueAssemblesFromDatabaseConfig(t *testing.T) {
	cfg := AppConfig{Database: DatabaseRuntimeConfig{
		Host:      "db.internal",
		Port:      3307,
		User:      "svc",
		Password:  "s3cret",
		Name:      "pentaview",
		Charset:   "utf8mb4",
		ParseTime: true,
	}}

	dsn := cfg.DSNValue()
	assert.True(t, strings.HasPrefix(dsn, "svc:s3cret@tcp(db.internal:3307)/pentaview"), "got %q", dsn)
	assert.Contains(t, dsn, "charset=utf8mb4")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestDSNValueFillsDefaults(t *testing.T) {
	cfg := AppConfig{}
	dsn := cfg.DSNValue()
	assert.Contains(t, dsn, "tcp(127.0.0.1:3306)")
}
