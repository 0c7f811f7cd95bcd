package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	root := New()

	cmd, args, err := root.Find([]string{"addons", "open", "redis-123"})
	require.NoError(t, err)
	assert.Equal(t, "open", cmd.Name())
	assert.Equal(t, []string{"redis-123"}, args)

	cmd, args, err = root.Find([]string{"addons:open", "redis-123"})
	require.NoError(t, err)
	assert.Equal(t, "addons:open", cmd.Name())
	assert.Equal(t, []string{"redis-123"}, args)

	cmd, _, err = root.Find([]string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "version", cmd.Name())
}

func TestPersistentFlags(t *testing.T) {
	fs := New().PersistentFlags()

	assert.NotNil(t, fs.Lookup("api-key"))
	assert.NotNil(t, fs.Lookup("verbose"))
}
