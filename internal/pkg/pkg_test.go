package pkg

import (
	"strings"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	for _, c := range []struct {
		v    float64
		prec int
		s    string
	}{
		{1.5, 3, "1.5"},
		{2, 3, "2"},
		{0.125, 2, "0.12"},
		{-10.100, 4, "-10.1"},
		{0, 0, "0"},
	} {
		assert.Equal(t, c.s, FormatFloat(c.v, c.prec))
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.29e+12", FormatValue(1.2941e12, 3))
	assert.Equal(t, "0.5", FormatValue(0.5, 6))
}

func TestTrimFileName(t *testing.T) {
	assert.Equal(t, "eqair/internal/air/air.go",
		trimFileName(`C:\GOPATH\src\github.com\fpawel\eqair\internal\air\air.go`))
	assert.Equal(t, "github.com/ansel1/merry/errors.go",
		trimFileName("/home/u/go/pkg/mod/github.com/ansel1/merry@v1.5.1/errors.go"))
}

func TestFormatMerryStacktrace(t *testing.T) {
	s := FormatMerryStacktrace(merry.New("x"), "\n")
	assert.Contains(t, s, "TestFormatMerryStacktrace")
	assert.Equal(t, "", FormatMerryStacktrace(nil, "\n"))
}

func TestFormatStacktrace(t *testing.T) {
	s := FormatStacktrace(0, "\n")
	lines := strings.Split(s, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "TestFormatStacktrace")
	assert.NotContains(t, s, "runtime.goexit")
}
