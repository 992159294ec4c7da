package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/config"
)

func TestNewLogger_TagsServiceAndEnv(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(&buf, config.Config{AppEnv: "prod", OTELServiceName: "hireline"})

	lg.Info("started")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hireline", rec["service"])
	assert.Equal(t, "prod", rec["env"])
	assert.Equal(t, "started", rec["msg"])
}

func TestNewLogger_DebugOnlyInDev(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, config.Config{AppEnv: "prod"}).Debug("hidden")
	assert.Zero(t, buf.Len())

	NewLogger(&buf, config.Config{AppEnv: "dev"}).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
