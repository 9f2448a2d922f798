package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	for _, debug := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "game.log")
		log, err := New(debug, path)
		require.NoError(t, err)

		log.Info("mission started")
		log.Debug("npc moved")
		_ = log.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "mission started")
		if debug {
			assert.Contains(t, string(data), "npc moved")
		} else {
			assert.NotContains(t, string(data), "npc moved")
		}
	}
}
