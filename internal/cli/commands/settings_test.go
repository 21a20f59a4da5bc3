package commands

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_ConfigFile(t *testing.T) {
	t.Run("defaults without sigc.yml", func(t *testing.T) {
		inTempDir(t)

		s, err := loadSettings(&cobra.Command{})
		require.NoError(t, err)
		assert.False(t, s.configFile)
		assert.Equal(t, ".sig", s.cfg.SourceExtension)
	})

	t.Run("sigc.yml found", func(t *testing.T) {
		inTempDir(t)
		config := "source_extension: .sg\nlog:\n  level: \"off\"\n"
		require.NoError(t, os.WriteFile("sigc.yml", []byte(config), 0644))

		s, err := loadSettings(&cobra.Command{})
		require.NoError(t, err)
		assert.True(t, s.configFile)
		assert.Equal(t, ".sg", s.cfg.SourceExtension)
	})
}
