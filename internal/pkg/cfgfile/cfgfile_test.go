package cfgfile

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestF(t *testing.T) {
	dir, err := ioutil.TempDir("", "cfgfile")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	type T struct {
		A int    `yaml:"a"`
		B string `yaml:"b"`
	}

	f := New(filepath.Join(dir, "x.yaml"), yaml.Marshal, yaml.Unmarshal)
	var v T
	assert.True(t, os.IsNotExist(f.Get(&v)))

	require.NoError(t, f.Set(T{A: 1, B: "b"}))
	require.NoError(t, f.Get(&v))
	assert.Equal(t, T{A: 1, B: "b"}, v)

	require.NoError(t, ioutil.WriteFile(f.Filename(), []byte("a: [1"), 0666))
	err = f.Get(&v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), f.Filename())
}

func TestRelative(t *testing.T) {
	f := New("x.yaml", yaml.Marshal, yaml.Unmarshal)
	assert.Equal(t, ExeDir("x.yaml"), f.Filename())
}
