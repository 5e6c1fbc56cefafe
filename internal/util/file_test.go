package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAllowedExtension(t *testing.T) {
	assert.True(t, HasAllowedExtension("lecture.MP4", AllowedVideoExtensions))
	assert.True(t, HasAllowedExtension("cover.png", AllowedImageExtensions))
	assert.False(t, HasAllowedExtension("notes.pdf", AllowedVideoExtensions))
	assert.False(t, HasAllowedExtension("noext", AllowedImageExtensions))
}

func TestValidateMimeType(t *testing.T) {
	// PNG 魔数
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

	mime, err := ValidateMimeType(bytes.NewReader(png), []string{MimeImage})
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	_, err = ValidateMimeType(bytes.NewReader(png), []string{MimeVideo})
	assert.Error(t, err)
}

func TestGenerateUploadName(t *testing.T) {
	name := GenerateUploadName("videos", "lecture.mp4")
	assert.True(t, strings.HasPrefix(name, "videos/"))
	assert.True(t, strings.HasSuffix(name, ".mp4"))

	other := GenerateUploadName("videos", "lecture.mp4")
	assert.NotEqual(t, name, other)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatDuration(0))
	assert.Equal(t, "00:01:30", FormatDuration(90))
	assert.Equal(t, "01:15:05", FormatDuration(4505.7))
}

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(17), MustParseUint("17"))
	assert.Equal(t, uint(0), MustParseUint("not-a-number"))
}
