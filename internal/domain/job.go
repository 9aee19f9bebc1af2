package domain

import "fmt"

type JobKind string

const (
	JobKindResize JobKind = "resize"
)

// Job is an immutable unit of transcode work. Its identity is the
// (VideoID, Width, Height) tuple; duplicates are not collapsed.
type Job struct {
	Kind    JobKind `json:"kind"`
	VideoID string  `json:"videoId"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
}

func NewResizeJob(videoID string, width, height int) Job {
	return Job{
		Kind:    JobKindResize,
		VideoID: videoID,
		Width:   width,
		Height:  height,
	}
}

// Key returns the resize record key the job completes.
func (j Job) Key() string {
	return ResizeKey(j.Width, j.Height)
}

func (j Job) String() string {
	return fmt.Sprintf("%s %s %s", j.Kind, j.VideoID, j.Key())
}
