package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	gozxingqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodeFile(t *testing.T, path string) string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	res, err := gozxingqr.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)
	return res.GetText()
}

func TestEncode_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	_, err := execute(t, "", "encode", "https://example.com", "-o", path, "--size", "small", "--border", "2")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", decodeFile(t, path))
}

func TestEncode_StdinWithEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	_, err := execute(t, "from stdin\n", "encode", "-", "-o", path, "--qr.engine", "skip2")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", decodeFile(t, path))
}

func TestEncode_Styled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styled.png")

	_, err := execute(t, "", "encode", "styled", "-o", path, "--styled")
	require.NoError(t, err)
	assert.Equal(t, "styled", decodeFile(t, path))
}

func TestEncode_FormatFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.svg")

	_, err := execute(t, "", "encode", "vector", "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestEncode_Stdout(t *testing.T) {
	out, err := execute(t, "", "encode", "hello", "--format", "svg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown_size", args: []string{"encode", "x", "--size", "Huge"}, want: "unknown size"},
		{name: "border_range", args: []string{"encode", "x", "--border", "11"}, want: "border must be between 1 and 10"},
		{name: "empty_payload", args: []string{"encode", "-"}, want: "payload is empty"},
		{name: "bad_engine", args: []string{"encode", "x", "--qr.engine", "nope"}, want: "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEncode_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QRGEN_QR_ENGINE=fromdotenv\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	// restore the variable after godotenv sets it
	t.Setenv("QRGEN_QR_ENGINE", "")
	require.NoError(t, os.Unsetenv("QRGEN_QR_ENGINE"))

	_, err = execute(t, "", "encode", "x", "-o", filepath.Join(dir, "out.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fromdotenv")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "qrgen dev")
}
