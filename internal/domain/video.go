package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SupportedExtensions lists the container formats accepted for originals.
var SupportedExtensions = []string{"mov", "mp4"}

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

func (d Dimensions) String() string {
	return ResizeKey(d.Width, d.Height)
}

type Resize struct {
	Processing bool `json:"processing"`
}

type Video struct {
	ID             int               `json:"id"`
	VideoID        string            `json:"videoId"`
	Name           string            `json:"name"`
	Extension      string            `json:"extension"`
	Dimensions     Dimensions        `json:"dimensions"`
	UserID         int               `json:"userId"`
	ExtractedAudio bool              `json:"extractedAudio"`
	Resizes        map[string]Resize `json:"resizes"`
}

func NewVideo(seq int, name, extension string, dims Dimensions) *Video {
	return &Video{
		ID:         seq,
		VideoID:    NewVideoID(),
		Name:       name,
		Extension:  extension,
		Dimensions: dims,
		Resizes:    make(map[string]Resize),
	}
}

// NewVideoID returns 8 random hex characters.
func NewVideoID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// ResizeKey formats the "WxH" key of a resize record.
func ResizeKey(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// ParseResizeKey is the inverse of ResizeKey.
func ParseResizeKey(key string) (Dimensions, error) {
	w, h, ok := strings.Cut(key, "x")
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidResizeKey, key)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidResizeKey, key)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidResizeKey, key)
	}
	d := Dimensions{Width: width, Height: height}
	if !d.Valid() {
		return Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidResizeKey, key)
	}
	return d, nil
}

func IsSupportedExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, e := range SupportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share the Resizes map.
func (v *Video) Clone() *Video {
	c := *v
	c.Resizes = make(map[string]Resize, len(v.Resizes))
	for k, r := range v.Resizes {
		c.Resizes[k] = r
	}
	return &c
}

// MarkResizing records a requested resize as in progress.
func (v *Video) MarkResizing(width, height int) {
	if v.Resizes == nil {
		v.Resizes = make(map[string]Resize)
	}
	v.Resizes[ResizeKey(width, height)] = Resize{Processing: true}
}

// MarkResized flips the record for width x height to done.
func (v *Video) MarkResized(width, height int) {
	if v.Resizes == nil {
		v.Resizes = make(map[string]Resize)
	}
	v.Resizes[ResizeKey(width, height)] = Resize{Processing: false}
}

// PendingResizes returns the dimensions of every record still marked
// processing, ordered by key. Keys that do not parse are skipped.
func (v *Video) PendingResizes() []Dimensions {
	keys := make([]string, 0, len(v.Resizes))
	for k, r := range v.Resizes {
		if r.Processing {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pending := make([]Dimensions, 0, len(keys))
	for _, k := range keys {
		d, err := ParseResizeKey(k)
		if err != nil {
			continue
		}
		pending = append(pending, d)
	}
	return pending
}
