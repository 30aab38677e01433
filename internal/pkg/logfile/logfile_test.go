package logfile

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	dir, err := ioutil.TempDir("", "logfile")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	dir = filepath.Join(dir, "logs")
	f, err := New(dir, ".eqair")
	require.NoError(t, err)
	_, err = f.WriteString("hello\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err := ioutil.ReadFile(Filename(dir, time.Now(), ".eqair"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(b))
}

func TestFilename(t *testing.T) {
	tm := time.Date(2020, 3, 4, 15, 16, 17, 0, time.Local)
	assert.Equal(t, filepath.Join("logs", "2020-03-04.x.log"), Filename("logs", tm, ".x"))
}
