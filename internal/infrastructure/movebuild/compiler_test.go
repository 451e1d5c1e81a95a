package movebuild

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldrin-labs/ramm-sui-deploy/internal/core/domain"
)

func TestParseBuildOutput(t *testing.T) {
	t.Run("valid dump", func(t *testing.T) {
		moduleA := []byte{0xa1, 0x1c, 0xeb, 0x0b}
		moduleB := []byte("second module bytecode")
		out := []byte(`{
			"modules": ["` + base64.StdEncoding.EncodeToString(moduleA) + `", "` +
			base64.StdEncoding.EncodeToString(moduleB) + `"],
			"dependencies": ["0x1", "0x2"]
		}`)

		compiled, err := parseBuildOutput(out)
		require.NoError(t, err)
		require.Len(t, compiled.Modules, 2)
		assert.Equal(t, moduleA, compiled.Modules[0])
		assert.Equal(t, moduleB, compiled.Modules[1])
		assert.Equal(
			t, []domain.ObjectID{"0x1", "0x2"}, compiled.Dependencies,
		)
	})

	t.Run("no modules", func(t *testing.T) {
		_, err := parseBuildOutput([]byte(`{"modules": [], "dependencies": ["0x1"]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no modules")
	})

	t.Run("invalid base64 bytecode", func(t *testing.T) {
		_, err := parseBuildOutput([]byte(`{"modules": ["!!not-base64!!"], "dependencies": []}`))
		require.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := parseBuildOutput([]byte("Build Successful"))
		require.Error(t, err)
	})
}
