package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", ":7070", "-d", "postgres://u:p@db/x", "-s", "flag-secret", "-t", "90", "-w", "12"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.EndpointAddr, ":7070")
	assert.Equal(t, c.DatabaseDSN, "postgres://u:p@db/x")
	assert.Equal(t, c.SecretKey, "flag-secret")
	assert.Equal(t, c.TokenValidityDuration, 90*time.Minute)
	assert.Equal(t, c.BcryptCost, 12)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-x", "1", "-a", ":6060"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.EndpointAddr, ":6060")
}
