package domain

import "errors"

var (
	ErrNotFound          = errors.New("video not found")
	ErrInvalidDimensions = errors.New("width and height must be positive integers")
	ErrInvalidResizeKey  = errors.New("invalid resize key")
	ErrAudioExtracted    = errors.New("the audio has already been extracted for this video")
	ErrUnsupportedFormat = errors.New("only these formats are allowed: mov, mp4")
	ErrAssetNotFound     = errors.New("asset not found")
	ErrInvalidAssetType  = errors.New("invalid asset type")
)
