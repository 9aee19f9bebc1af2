package validation

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mp4Magic  = []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'}
	mp42Magic = []byte{0x00, 0x00, 0x00, 0x1C, 'f', 't', 'y', 'p', 'm', 'p', '4', '2'}
	movMagic  = []byte{0x00, 0x00, 0x00, 0x14, 'f', 't', 'y', 'p', 'q', 't', ' ', ' '}
	oldMov    = []byte{0x00, 0x00, 0x00, 0x08, 'w', 'i', 'd', 'e', 0x00, 0x00, 0x00, 0x00}
	webmMagic = []byte{0x1A, 0x45, 0xDF, 0xA3}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}
	exeMagic  = []byte{0x4D, 0x5A, 0x90, 0x00, 0x03, 0x00, 0x00, 0x00}
)

// padBytes pads the magic bytes to ensure enough data for detection
func padBytes(magic []byte, size int) []byte {
	if len(magic) >= size {
		return magic
	}
	result := make([]byte, size)
	copy(result, magic)
	return result
}

func TestValidateMagicBytes_AllowedTypes(t *testing.T) {
	tests := []struct {
		name         string
		magic        []byte
		expectedMIME string
	}{
		{"MP4 isom", mp4Magic, "video/mp4"},
		{"MP4 mp42", mp42Magic, "video/mp4"},
		{"QuickTime ftyp", movMagic, "video/quicktime"},
		{"QuickTime without ftyp", oldMov, "video/quicktime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := bytes.NewReader(padBytes(tt.magic, 512))
			mime, allowed, err := ValidateMagicBytes(reader)

			require.NoError(t, err)
			assert.True(t, allowed, "%s should be allowed", tt.name)
			assert.Equal(t, tt.expectedMIME, mime)
		})
	}
}

func TestValidateMagicBytes_RejectedTypes(t *testing.T) {
	tests := []struct {
		name  string
		magic []byte
	}{
		{"WebM", webmMagic},
		{"JPEG", jpegMagic},
		{"Windows EXE", exeMagic},
		{"HTML document", []byte("<!DOCTYPE html><html><body></body></html>")},
		{"PHP script", []byte("<?php echo 'hello'; ?>")},
		{"Random binary", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}},
		{"Text file", []byte("Hello, this is plain text content.")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := bytes.NewReader(padBytes(tt.magic, 512))
			_, allowed, err := ValidateMagicBytes(reader)

			require.NoError(t, err)
			assert.False(t, allowed, "%s should be rejected", tt.name)
		})
	}
}

func TestValidateMagicBytes_Empty_Rejected(t *testing.T) {
	mime, allowed, err := ValidateMagicBytes(bytes.NewReader(nil))

	require.NoError(t, err)
	assert.False(t, allowed, "Empty file should be rejected")
	assert.Equal(t, "application/octet-stream", mime)
}

func TestValidateMagicBytes_SmallFile_NoError(t *testing.T) {
	mime, allowed, err := ValidateMagicBytes(bytes.NewReader(mp4Magic))

	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, "video/mp4", mime)
}

func TestValidateMagicBytes_ReaderPositionReset(t *testing.T) {
	originalData := padBytes(mp4Magic, 1024)
	reader := bytes.NewReader(originalData)

	_, _, err := ValidateMagicBytes(reader)
	require.NoError(t, err)

	pos, err := reader.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos, "Reader position should be reset to 0")

	readData, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, originalData, readData)
}

func TestErrDisallowedFileType_Defined(t *testing.T) {
	assert.Equal(t, "file type not allowed", ErrDisallowedFileType.Error())
}
