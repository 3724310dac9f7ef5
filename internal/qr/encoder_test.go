package qr_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	gozxingqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrgen/internal/qr"
)

func decode(t *testing.T, img image.Image) string {
	t.Helper()

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)

	result, err := gozxingqr.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err, "decode QR image")
	return result.GetText()
}

func engines(t *testing.T) []*qr.Encoder {
	t.Helper()

	var out []*qr.Encoder
	for _, name := range qr.EngineNames() {
		engine, err := qr.EngineByName(name)
		require.NoError(t, err)
		out = append(out, qr.NewEncoder(engine, nil))
	}
	return out
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	payloads := []string{
		"https://example.com",
		"Hello, World! This is a sample QR code.",
		"WIFI:T:WPA;S:network_name;P:password;;",
		"mailto:email@example.com",
		"tel:+1234567890",
		"0123456789",
		"HELLO WORLD 42",
		"  leading and trailing spaces are kept  ",
		strings.Repeat("lorem ipsum dolor sit amet ", 20),
	}

	for _, enc := range engines(t) {
		for _, payload := range payloads {
			bmp, err := enc.Encode(payload, 10, 4)
			require.NoError(t, err, "engine %s", enc.Engine())
			assert.Equal(t, payload, decode(t, bmp), "engine %s", enc.Engine())
		}
	}
}

func TestEncode_ExampleURLScenario(t *testing.T) {
	t.Parallel()

	size, ok := qr.LookupSize("Medium")
	require.True(t, ok)

	bmp, err := qr.Encode("https://example.com", size.ModuleSize, 4)
	require.NoError(t, err)

	assert.Equal(t, 10, bmp.ModuleSize)
	assert.Equal(t, 4, bmp.Border)
	assert.Equal(t, (bmp.Dimension()+8)*10, bmp.Side())
	assert.Equal(t, bmp.Side(), bmp.Bounds().Dy())
	assert.Equal(t, "https://example.com", decode(t, bmp))
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	for _, enc := range engines(t) {
		first, err := enc.Encode("deterministic payload", 5, 2)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			again, err := enc.Encode("deterministic payload", 5, 2)
			require.NoError(t, err)
			assert.Equal(t, first.Pix, again.Pix, "engine %s", enc.Engine())
			assert.Equal(t, first.Modules, again.Modules, "engine %s", enc.Engine())
		}
	}
}

func TestEncode_SideGrowsWithModuleSize(t *testing.T) {
	t.Parallel()

	prev := 0
	for _, size := range qr.Sizes {
		bmp, err := qr.Encode("https://example.com/some/path", size.ModuleSize, 4)
		require.NoError(t, err)
		assert.Greater(t, bmp.Side(), prev, "size %s", size.Label)
		prev = bmp.Side()
	}
}

func TestEncode_BorderOnlyAddsMargin(t *testing.T) {
	t.Parallel()

	const moduleSize = 5
	base, err := qr.Encode("border invariant", moduleSize, 1)
	require.NoError(t, err)

	for k := 1; k <= 9; k++ {
		wider, err := qr.Encode("border invariant", moduleSize, 1+k)
		require.NoError(t, err)

		shift := k * moduleSize
		require.Equal(t, base.Side()+2*shift, wider.Side(), "k=%d", k)

		// Symbol region is unchanged, only translated.
		for y := 0; y < base.Side(); y++ {
			for x := 0; x < base.Side(); x++ {
				if base.IsDark(x, y) != wider.IsDark(x+shift, y+shift) {
					t.Fatalf("k=%d: pixel (%d,%d) differs after shifting", k, x, y)
				}
			}
		}

		// The extra margin is blank on all four sides.
		side := wider.Side()
		for i := 0; i < side; i++ {
			for d := 0; d < shift; d++ {
				assert.False(t, wider.IsDark(i, d), "top margin k=%d", k)
				assert.False(t, wider.IsDark(i, side-1-d), "bottom margin k=%d", k)
				assert.False(t, wider.IsDark(d, i), "left margin k=%d", k)
				assert.False(t, wider.IsDark(side-1-d, i), "right margin k=%d", k)
			}
		}
	}
}

func TestEncode_ZeroBorder(t *testing.T) {
	t.Parallel()

	bmp, err := qr.Encode("no quiet zone", 3, 0)
	require.NoError(t, err)
	assert.Equal(t, bmp.Dimension()*3, bmp.Side())
	// Top-left finder pattern starts at the very first pixel.
	assert.True(t, bmp.IsDark(0, 0))
}

func TestEncode_RejectsInvalidRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    string
		moduleSize int
		border     int
		want       error
	}{
		{name: "empty_payload", payload: "", moduleSize: 10, border: 4, want: qr.ErrEmptyPayload},
		{name: "whitespace_payload", payload: " \n\t ", moduleSize: 10, border: 4, want: qr.ErrEmptyPayload},
		{name: "zero_module_size", payload: "x", moduleSize: 0, border: 4, want: qr.ErrInvalidModuleSize},
		{name: "huge_module_size", payload: "x", moduleSize: 256, border: 4, want: qr.ErrInvalidModuleSize},
		{name: "negative_border", payload: "x", moduleSize: 10, border: -1, want: qr.ErrInvalidBorder},
		{name: "too_long_bytes", payload: strings.Repeat("a", 2954), moduleSize: 10, border: 4, want: qr.ErrPayloadTooLarge},
		{name: "too_long_numeric", payload: strings.Repeat("7", 7090), moduleSize: 10, border: 4, want: qr.ErrPayloadTooLarge},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bmp, err := qr.Encode(tt.payload, tt.moduleSize, tt.border)
			assert.Nil(t, bmp)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, qr.IsEncodingError(err))
		})
	}
}

type failingEngine struct{}

func (failingEngine) Name() string { return "failing" }

func (failingEngine) Matrix(string) ([][]bool, error) {
	return nil, errors.New("data too long for any version")
}

func TestEncode_EngineFailureIsEncodingError(t *testing.T) {
	t.Parallel()

	enc := qr.NewEncoder(failingEngine{}, nil)
	bmp, err := enc.Encode("anything", 10, 4)
	assert.Nil(t, bmp)

	var encErr *qr.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "failing", encErr.Engine)
	assert.Contains(t, err.Error(), "data too long for any version")
}

func TestEncode_LongNumericPayloadUsesVersion40(t *testing.T) {
	t.Parallel()

	bmp, err := qr.Encode(strings.Repeat("1", 7000), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 40, bmp.Version())
}

func TestEncode_MixedModePayload(t *testing.T) {
	t.Parallel()

	// alphanumeric run plus one byte-mode character: over the single-mode
	// byte limit, but within version 40 when segmented
	payload := strings.Repeat("A", 4000) + "a"

	_, err := qr.Encode(payload, 1, 0)
	assert.ErrorIs(t, err, qr.ErrPayloadTooLarge)

	bmp, err := qr.NewEncoder(qr.Skip2Engine{}, nil).Encode(payload, 1, 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, bmp.Version(), 40)
	assert.Greater(t, bmp.Version(), 30)
}

func TestEncode_Skip2OversizeIsPayloadTooLarge(t *testing.T) {
	t.Parallel()

	bmp, err := qr.NewEncoder(qr.Skip2Engine{}, nil).Encode(strings.Repeat("a", 3000), 10, 4)
	assert.Nil(t, bmp)
	assert.ErrorIs(t, err, qr.ErrPayloadTooLarge)
	assert.True(t, qr.IsEncodingError(err))
}

func TestWriteStyled_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := qr.WriteStyled(&buf, qr.Request{Payload: "https://example.com", ModuleSize: 10, Border: 4})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", decode(t, img))
}

func TestWriteStyled_RejectsEmptyPayload(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := qr.WriteStyled(&buf, qr.Request{Payload: "   ", ModuleSize: 10, Border: 4})
	assert.ErrorIs(t, err, qr.ErrEmptyPayload)
	assert.Zero(t, buf.Len())
}
