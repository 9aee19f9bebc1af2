package port

import "github.com/bnema/vidq/internal/domain"

// Catalog is the persisted video list. Reads and writes go through an
// in-memory copy: Refresh reloads it, Save persists it. Videos handed out are
// copies; write them back with Put.
type Catalog interface {
	Refresh() error
	Save() error
	FindByVideoID(videoID string) (*domain.Video, error)
	Videos() []*domain.Video
	Put(v *domain.Video)
}
