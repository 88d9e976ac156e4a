package keys

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zmk-locale-generator/internal/hid"
)

func TestParseYAML(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "keys.yaml"))
	require.NoError(t, err)

	tbl, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "E", "NUMBER_2", "N2", "AT_SIGN", "EURO_SIGN"}, tbl.Names())

	e, ok := tbl.Get("N2")
	require.True(t, ok)
	assert.Equal(t, Alias{Target: "NUMBER_2"}, e)

	e, ok = tbl.Get("EURO_SIGN")
	require.True(t, ok)
	assert.Equal(t, Alias{Target: "EURO"}, e)

	u, err := tbl.Resolve("AT_SIGN")
	require.NoError(t, err)
	assert.Equal(t, hid.NewUsage(hid.PageKeyboard, 0x1F).WithModifiers(hid.NewModifiers(hid.ModRAlt)), u)
}

func TestParseYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "missing id", yaml: "keys:\n  A: {page: 7}\n", want: "page and id"},
		{name: "bad modifier", yaml: "keys:\n  A: {page: 7, id: 4, modifiers: [HYPER]}\n", want: "unknown modifier"},
		{name: "alias with usage", yaml: "keys:\n  A: {alias: B, page: 7}\n", want: "alias cannot be combined"},
		{name: "keys not a mapping", yaml: "keys: [A, B]\n", want: "must be a mapping"},
		{name: "list entry", yaml: "keys:\n  A: [1, 2]\n", want: `key "A"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHeaderParser(t *testing.T) {
	loader := NewLoader(zerolog.Nop())

	tbl, err := loader.LoadFiles([]string{
		filepath.Join("testdata", "hid_usage_pages.h"),
		filepath.Join("testdata", "keys.h"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "NUMBER_1", "N1", "EXCL", "SHIFTED_A", "C_VOL_UP"}, tbl.Names())

	u, err := tbl.Resolve("A")
	require.NoError(t, err)
	assert.Equal(t, hid.NewUsage(hid.PageKeyboard, 0x04), u)

	u, err = tbl.Resolve("N1")
	require.NoError(t, err)
	assert.Equal(t, hid.NewUsage(hid.PageKeyboard, 0x1E), u)

	u, err = tbl.Resolve("SHIFTED_A")
	require.NoError(t, err)
	assert.Equal(t, hid.NewUsage(hid.PageKeyboard, 0x04).WithModifiers(hid.NewModifiers(hid.ModLShift)), u)

	u, err = tbl.Resolve("C_VOL_UP")
	require.NoError(t, err)
	assert.Equal(t, hid.NewUsage(0x0C, 0xE9), u)

	// EXCLAMATION wraps a key name in a modifier and is skipped, so the
	// alias pointing at it dangles.
	_, err = tbl.Resolve("EXCL")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestHeaderParser_UndefinedConstant(t *testing.T) {
	p := NewHeaderParser(zerolog.Nop())

	_, err := p.Parse(strings.NewReader("#define A (ZMK_HID_USAGE(HID_USAGE_KEY, 4))\n"))
	require.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "line 1")
}

func TestHeaderParser_Constants(t *testing.T) {
	p := NewHeaderParser(zerolog.Nop())

	_, err := p.Parse(strings.NewReader("#define PAGE 0x07\n#define KEY_PAGE PAGE\n#define MACRO(x) (x)\n"))
	require.NoError(t, err)

	assert.Equal(t, uint64(7), p.consts["KEY_PAGE"])
	assert.NotContains(t, p.consts, "MACRO")
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := NewLoader(zerolog.Nop()).LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported key table format")
}
