package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchedExtensions(t *testing.T) {
	assert.True(t, isSpecFile("prefabs/tooth.yaml"))
	assert.True(t, isSpecFile("x.YML"))
	assert.False(t, isSpecFile("tooth.tengo"))

	assert.True(t, isScriptFile("prefabs/scripts/shell.tengo"))
	assert.True(t, isScriptFile("SHELL.TENGO"))
	assert.False(t, isScriptFile("shell.yaml"))
	assert.False(t, isScriptFile("notes.txt"))
}

func TestWatcherReportsScriptsAndSpecs(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tooth.tengo"), []byte("turn := false"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tooth.yaml"), []byte("speed: 1"), 0o644))

	seen := map[string]bool{}
	deadline := time.After(2 * time.Second)
	for !(seen["tooth.tengo"] && seen["tooth.yaml"]) {
		select {
		case name := <-w.Events:
			seen[name] = true
		case <-deadline:
			t.Fatalf("saw %v before timeout", seen)
		}
	}
	assert.False(t, seen["notes.txt"])
}
