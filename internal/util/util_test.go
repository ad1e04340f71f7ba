package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	cases := map[int64]string{
		0:                      "0 B",
		1023:                   "1023 B",
		1536:                   "1.5 KB",
		3 * 1024 * 1024:        "3.0 MB",
		5 * 1024 * 1024 * 1024: "5.0 GB",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatBytes(in), "FormatBytes(%d)", in)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := map[time.Duration]string{
		300 * time.Millisecond:                   "0s",
		45 * time.Second:                         "45s",
		59*time.Second + 500*time.Millisecond:    "1m0s",
		2*time.Minute + 30*time.Second:           "2m30s",
		time.Hour + 30*time.Minute + time.Second: "1h30m",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatDuration(in), "FormatDuration(%s)", in)
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain words", input: "Home Decor", want: "home-decor"},
		{name: "symbols collapse", input: "Home & Living!!", want: "home-living"},
		{name: "accents folded", input: "Café Crème", want: "cafe-creme"},
		{name: "edges trimmed", input: "  --Kids' Toys--  ", want: "kids-toys"},
		{name: "digits kept", input: "Phones 5G", want: "phones-5g"},
		{name: "nothing usable", input: "★★★", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestCalculateFileChecksum(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	got, err := CalculateFileChecksum(path)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)

	_, err = CalculateFileChecksum(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
