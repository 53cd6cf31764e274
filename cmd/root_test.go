package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tabebui/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "seed"})
}

func TestRequestTimeout(t *testing.T) {
	got := requestTimeout(config.ChatConfig{Timeout: 20 * time.Second, MaxRetries: 1})
	assert.Equal(t, 50*time.Second, got)
}

func TestLoadParts(t *testing.T) {
	t.Run("埋め込みデータ", func(t *testing.T) {
		parts, err := loadParts("")
		require.NoError(t, err)
		assert.Len(t, parts, 35)
	})

	t.Run("ファイル指定", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "parts.yaml")
		yaml := "parts:\n  - {id: 1, animal_type: beef, part_category: meat, part_name: harami, part_name_ja: ハラミ, rarity: uncommon}\n"
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

		parts, err := loadParts(path)
		require.NoError(t, err)
		require.Len(t, parts, 1)
		assert.Equal(t, 2, parts[0].DifficultyLevel)
	})

	t.Run("ファイルがない", func(t *testing.T) {
		_, err := loadParts(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
