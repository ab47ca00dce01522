package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggingWithPath_TruncatesPreviousLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steamshelf.log")
	err := os.WriteFile(path, []byte("stale content from a previous, longer run\n"), os.ModePerm)
	assert.NoError(t, err, "Seeding the old logfile should not return an error")

	err = InitLoggingWithPath(path)
	assert.NoError(t, err, "Opening the logfile should not return an error")

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), info.Size(), "A new run should not keep the previous run's bytes")
}
