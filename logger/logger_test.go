package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithLevel_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithLevel(&buf, "langler", "info")

	log.Info("model trained", "topics", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "model trained", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "langler", entry["service"])
	assert.Equal(t, float64(2), entry["topics"])
}

func TestNewWithLevel_RespectsLevel(t *testing.T) {
	tests := map[string]struct {
		level      string
		wantLogged bool
	}{
		"debug suppressed at info": {level: "info", wantLogged: false},
		"debug logged at debug":    {level: "debug", wantLogged: true},
		"unknown defaults to info": {level: "chatty", wantLogged: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithLevel(&buf, "langler", tc.level)

			log.Debug("tokenizing")

			if tc.wantLogged {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
