package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "keypad", Password: "p@ss word", DBName: "lizzykeypad", SSLMode: "disable"}

	assert.Equal(t, "postgres://keypad:p%40ss%20word@db:5432/lizzykeypad?sslmode=disable", cfg.DSN())
}
