package port

import (
	"context"

	"github.com/bnema/vidq/internal/domain"
)

type Transcoder interface {
	Resize(ctx context.Context, source, target string, width, height int) error
	ExtractAudio(ctx context.Context, source, target string) error
	MakeThumbnail(ctx context.Context, source, target string) error
	GetDimensions(ctx context.Context, source string) (domain.Dimensions, error)
}
