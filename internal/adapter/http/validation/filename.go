package validation

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMissingFilename is returned when the filename header is blank.
var ErrMissingFilename = errors.New("missing filename")

// maxNameBytes bounds the stored display name. Extensions are short, so the
// resulting "name.ext" stays under common filesystem limits.
const maxNameBytes = 200

// UploadName turns the client-supplied filename header into a display name
// and a lowercase extension without the dot. Directory components are
// dropped and characters that could break a header or a path are replaced.
func UploadName(raw string) (name, ext string, err error) {
	raw = strings.TrimSpace(raw)
	if i := strings.LastIndexAny(raw, `/\`); i >= 0 {
		raw = raw[i+1:]
	}
	if raw == "" {
		return "", "", ErrMissingFilename
	}

	base := raw
	if dot := strings.LastIndexByte(raw, '.'); dot > 0 {
		base, ext = raw[:dot], strings.ToLower(raw[dot+1:])
	}

	name = truncate(strings.TrimSpace(strings.Map(cleanRune, base)), maxNameBytes)
	if strings.Trim(name, "_.") == "" {
		name = "video"
	}
	return name, strings.Map(cleanRune, ext), nil
}

func cleanRune(r rune) rune {
	switch {
	case r < 32 || r == 127:
		return '_'
	case strings.ContainsRune(`"\/:;*?<>|`, r):
		return '_'
	}
	return r
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ContentDisposition builds the header for serving filename. Names that are
// not plain ASCII get an RFC 5987 filename* parameter next to an ASCII
// fallback.
func ContentDisposition(filename string, inline bool) string {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	if filename == "" {
		filename = "file"
	}

	fallback := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || cleanRune(r) != r {
			return '_'
		}
		return r
	}, filename)

	header := disposition + `; filename="` + fallback + `"`
	if fallback != filename {
		header += "; filename*=UTF-8''" + encodeExtValue(filename)
	}
	return header
}

// encodeExtValue percent-encodes everything outside the RFC 5987 attr-char set.
func encodeExtValue(s string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0F])
	}
	return sb.String()
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
