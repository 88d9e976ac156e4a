package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeProject creates a small project in a temp dir and returns its config path.
func writeProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"zmk-locale-generator.toml": `
output_dir = "out"
keys = ["keys.yaml"]
codepoints = "codepoints.yaml"
year = 2024

[[locales]]
code = "fr"
layout = "fr.yaml"
`,
		"keys.yaml": `
keys:
  A: {page: 0x07, id: 0x04}
  Q: {page: 0x07, id: 0x14}
  E: {page: 0x07, id: 0x08}
  EURO_SIGN: {alias: EURO}
`,
		"codepoints.yaml": `
"a": A
"q": Q
"€": EURO
`,
		"fr.yaml": `
names: [French]
keymaps:
  - keys: {A: q, Q: a, E: e}
  - modifiers: [LSHIFT]
    keys: {A: Q, Q: A, E: E}
  - modifiers: [RALT]
    keys: {E: "€"}
`,
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return filepath.Join(dir, "zmk-locale-generator.toml")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	cfgPath := writeProject(t)
	outDir := filepath.Join(t.TempDir(), "headers")

	_, err := run(t, "generate", "--config", cfgPath, "--out", outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "keys_fr.h"))
	require.NoError(t, err)

	header := string(data)
	assert.Contains(t, header, "Localized Keys for French")
	assert.Contains(t, header, "#define FR_A (ZMK_HID_USAGE(0x07, 0x14))")
	assert.Contains(t, header, "#define FR_Q (ZMK_HID_USAGE(0x07, 0x04))")
	assert.Contains(t, header, "#define FR_EURO (RA(ZMK_HID_USAGE(0x07, 0x08)))\n#define FR_EURO_SIGN (FR_EURO)\n")
	assert.NotContains(t, header, "LS(")
}

func TestGenerateOptions_RunReloadsConfig(t *testing.T) {
	cfgPath := writeProject(t)
	dir := filepath.Dir(cfgPath)
	outDir := filepath.Join(t.TempDir(), "headers")

	opts := &generateOptions{rootOptions: &rootOptions{configPath: cfgPath}, outDir: outDir}

	files, err := opts.run(context.Background(), zerolog.Nop(), nil)
	require.NoError(t, err)
	assert.Contains(t, files, cfgPath)
	assert.FileExists(t, filepath.Join(outDir, "keys_fr.h"))
	assert.NoFileExists(t, filepath.Join(outDir, "keys_de.h"))

	// Add a key table and a locale to the project between two runs.
	extra := map[string]string{
		"extra.yaml":      "keys:\n  Z: {page: 0x07, id: 0x1D}\n",
		"de.yaml":         "names: [German]\nkeymaps:\n  - keys: {Z: z}\n",
		"codepoints.yaml": "\"a\": A\n\"q\": Q\n\"z\": Z\n\"€\": EURO\n",
	}
	for name, content := range extra {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)

	cfg := strings.Replace(string(data), `keys = ["keys.yaml"]`, `keys = ["keys.yaml", "extra.yaml"]`, 1)
	cfg += "\n[[locales]]\ncode = \"de\"\nlayout = \"de.yaml\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	files, err = opts.run(context.Background(), zerolog.Nop(), nil)
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(dir, "extra.yaml"))
	assert.Contains(t, files, filepath.Join(dir, "de.yaml"))

	header, err := os.ReadFile(filepath.Join(outDir, "keys_de.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "#define DE_Z (ZMK_HID_USAGE(0x07, 0x1D))")
}

func TestGenerateOptions_RunBrokenConfig(t *testing.T) {
	cfgPath := writeProject(t)
	require.NoError(t, os.WriteFile(cfgPath, []byte("keys = [\n"), 0o644))

	opts := &generateOptions{rootOptions: &rootOptions{configPath: cfgPath}}

	files, err := opts.run(context.Background(), zerolog.Nop(), nil)
	require.Error(t, err)
	assert.Nil(t, files)
}

func TestGenerateCmd_UnknownLocale(t *testing.T) {
	_, err := run(t, "generate", "--config", writeProject(t), "de")
	assert.EqualError(t, err, `unknown locale "de"`)
}

func TestShowCmd(t *testing.T) {
	out, err := run(t, "show", "--config", writeProject(t), "--diagnostics", "fr")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "FR_EURO")
	assert.Contains(t, out, "FR_EURO_SIGN")
	assert.Contains(t, out, "unnamed_character")
	assert.Contains(t, out, "duplicate_uppercase")
}

func TestShowCmd_InvalidReference(t *testing.T) {
	cfgPath := writeProject(t)
	layout := filepath.Join(filepath.Dir(cfgPath), "fr.yaml")
	require.NoError(t, os.WriteFile(layout, []byte("keymaps:\n  - keys: {A: q, OEM_8: \"!\"}\n"), 0o644))

	out, err := run(t, "show", "--config", cfgPath, "--diagnostics", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OEM_8")
	assert.Contains(t, out, "error [fr] OEM_8: invalid_reference:")
	assert.NotContains(t, out, "NAME")
}

func TestShowCmd_Dump(t *testing.T) {
	out, err := run(t, "show", "--config", writeProject(t), "--dump", "fr")
	require.NoError(t, err)

	assert.Contains(t, out, "plan.Plan")
	assert.Contains(t, out, `Locale: (string) (len=2) "fr"`)
}

func TestShowCmd_RequiresLocale(t *testing.T) {
	_, err := run(t, "show", "--config", writeProject(t))
	assert.Error(t, err)
}
