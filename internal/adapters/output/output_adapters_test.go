package output_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/texstream/texevents/internal/adapters/output"
	"github.com/texstream/texevents/internal/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of f.
func captureStdout(f func() error) (string, error) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), err
}

func TestStdoutAdapter_WriteEvent(t *testing.T) {
	outputStr, err := captureStdout(func() error {
		adapter := output.NewStdoutAdapter()
		if err := adapter.WriteEvent(event.BeginGroup()); err != nil {
			return err
		}
		if err := adapter.WriteEvent(event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'x'}})); err != nil {
			return err
		}
		return adapter.Close()
	})

	require.NoError(t, err)
	assert.Equal(t, "BeginGroup\nIdentifier('x', variant=none)\n", outputStr)
}

func TestFileAdapter_WriteEvent_NewFile(t *testing.T) {
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "events.txt")

	adapter, err := output.NewFileAdapter(testFilePath)
	require.NoError(t, err)

	require.NoError(t, adapter.WriteEvent(event.BeginGroup()))
	require.NoError(t, adapter.WriteEvent(event.EndGroup()))
	require.NoError(t, adapter.Close())

	contentBytes, readErr := os.ReadFile(testFilePath)
	require.NoError(t, readErr)
	assert.Equal(t, "BeginGroup\nEndGroup\n", string(contentBytes))
}

func TestFileAdapter_WriteEvent_OverwritesExisting(t *testing.T) {
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "events.txt")
	require.NoError(t, os.WriteFile(testFilePath, []byte("stale content"), 0644))

	adapter, err := output.NewFileAdapter(testFilePath)
	require.NoError(t, err)
	require.NoError(t, adapter.WriteEvent(event.EndGroup()))
	require.NoError(t, adapter.Close())

	contentBytes, readErr := os.ReadFile(testFilePath)
	require.NoError(t, readErr)
	assert.Equal(t, "EndGroup\n", string(contentBytes))
}

func TestFileAdapter_InvalidPath(t *testing.T) {
	tempDir := t.TempDir() // a directory, not a file
	_, err := output.NewFileAdapter(tempDir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to create output file")
}

func TestNewFileAdapter_PanicEmptyPath(t *testing.T) {
	assert.PanicsWithValue(t,
		"FileAdapter requires a non-empty file path",
		func() { output.NewFileAdapter("") },
		"Should panic if file path is empty",
	)
}

func TestNewWriterAdapter_Factory(t *testing.T) {
	t.Run("Empty Path returns StdoutAdapter", func(t *testing.T) {
		adapter, err := output.NewWriterAdapter("")
		require.NoError(t, err)
		assert.IsType(t, &output.StdoutAdapter{}, adapter)
	})

	t.Run("Non-Empty Path returns FileAdapter", func(t *testing.T) {
		tempDir := t.TempDir()
		adapter, err := output.NewWriterAdapter(filepath.Join(tempDir, "out.txt"))
		require.NoError(t, err)
		assert.IsType(t, &output.FileAdapter{}, adapter)
	})
}
