package domain

import (
	"path/filepath"
)

const (
	thumbnailFile = "thumbnail.jpg"
	audioFile     = "audio.aac"
)

// Layout maps videos to their files under Root:
//
//	<root>/<videoId>/original.<ext>
//	<root>/<videoId>/<W>x<H>.<ext>
//	<root>/<videoId>/thumbnail.jpg
//	<root>/<videoId>/audio.aac
type Layout struct {
	Root string
}

func NewLayout(root string) Layout {
	return Layout{Root: root}
}

func (l Layout) VideoDir(videoID string) string {
	return filepath.Join(l.Root, videoID)
}

func (l Layout) OriginalPath(v *Video) string {
	return filepath.Join(l.VideoDir(v.VideoID), "original."+v.Extension)
}

// ResizePath is fully determined by the video and target dimensions, so a
// retried job overwrites whatever an earlier attempt left behind.
func (l Layout) ResizePath(v *Video, width, height int) string {
	return filepath.Join(l.VideoDir(v.VideoID), ResizeKey(width, height)+"."+v.Extension)
}

func (l Layout) ThumbnailPath(videoID string) string {
	return filepath.Join(l.VideoDir(videoID), thumbnailFile)
}

func (l Layout) AudioPath(videoID string) string {
	return filepath.Join(l.VideoDir(videoID), audioFile)
}
