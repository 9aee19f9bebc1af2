// Package validation checks uploads and builds safe download headers.
package validation

import (
	"errors"
	"io"
	"net/http"
)

// ErrDisallowedFileType is returned when a file type is not in the allowlist.
var ErrDisallowedFileType = errors.New("file type not allowed")

// allowedMIMETypes lists the containers accepted as originals.
var allowedMIMETypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
}

// magicBytesBufferSize is the number of bytes to read for content type detection.
const magicBytesBufferSize = 512

// ValidateMagicBytes detects a file's content type from its first bytes and
// reports whether it is an accepted video container. The reader is rewound
// to the start before returning.
func ValidateMagicBytes(reader io.ReadSeeker) (mime string, allowed bool, err error) {
	buf := make([]byte, magicBytesBufferSize)
	n, err := io.ReadFull(reader, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", false, err
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", false, err
	}

	if n == 0 {
		return "application/octet-stream", false, nil
	}
	buf = buf[:n]

	mime = detectISOBMFF(buf)
	if mime == "" {
		mime = http.DetectContentType(buf)
	}

	return mime, allowedMIMETypes[mime], nil
}

// detectISOBMFF recognises MP4 and QuickTime files by the ftyp box at
// offset 4: [4 bytes size]["ftyp"][4 bytes major brand].
func detectISOBMFF(buf []byte) string {
	if len(buf) < 12 {
		return ""
	}
	if string(buf[4:8]) != "ftyp" {
		// Old QuickTime files may start with a moov, mdat or wide atom.
		switch string(buf[4:8]) {
		case "moov", "mdat", "wide", "free", "skip":
			return "video/quicktime"
		}
		return ""
	}

	switch string(buf[8:12]) {
	case "qt  ":
		return "video/quicktime"
	default:
		return "video/mp4"
	}
}
