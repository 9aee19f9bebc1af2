package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/infrastructure/fsutil"
	"github.com/bnema/vidq/internal/infrastructure/logger"
	"github.com/bnema/vidq/internal/port"
)

type AssetKind string

const (
	AssetThumbnail AssetKind = "thumbnail"
	AssetAudio     AssetKind = "audio"
	AssetResize    AssetKind = "resize"
	AssetOriginal  AssetKind = "original"
)

// Asset is a stored file ready to be served. DownloadName is empty for
// assets meant to be shown inline.
type Asset struct {
	Path         string
	MIMEType     string
	DownloadName string
}

type VideoService struct {
	catalog    port.Catalog
	transcoder port.Transcoder
	submitter  port.Submitter
	layout     domain.Layout
}

func NewVideoService(
	catalog port.Catalog,
	transcoder port.Transcoder,
	submitter port.Submitter,
	layout domain.Layout,
) *VideoService {
	return &VideoService{
		catalog:    catalog,
		transcoder: transcoder,
		submitter:  submitter,
		layout:     layout,
	}
}

// List returns every video, newest first.
func (s *VideoService) List() ([]*domain.Video, error) {
	if err := s.catalog.Refresh(); err != nil {
		return nil, fmt.Errorf("refresh catalog: %w", err)
	}
	return s.catalog.Videos(), nil
}

func (s *VideoService) Get(videoID string) (*domain.Video, error) {
	if err := s.catalog.Refresh(); err != nil {
		return nil, fmt.Errorf("refresh catalog: %w", err)
	}
	return s.catalog.FindByVideoID(videoID)
}

// Import moves an uploaded file into storage as a new video's original,
// renders its thumbnail and probes its dimensions. Nothing is left behind
// when any step fails.
func (s *VideoService) Import(ctx context.Context, filename string, file *os.File) (*domain.Video, error) {
	base := filepath.Base(filename)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	if !domain.IsSupportedExtension(ext) {
		return nil, domain.ErrUnsupportedFormat
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))

	v := domain.NewVideo(0, name, ext, domain.Dimensions{})
	dir := s.layout.VideoDir(v.VideoID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create video directory: %w", err)
	}

	if err := s.importFile(ctx, v, file); err != nil {
		fsutil.DeleteDir(dir)
		logger.Error.Printf("import of %s failed: %v", logger.SanitizeForLog(base), err)
		return nil, err
	}

	logger.Info.Printf("video imported: id=%s, name=%s, dimensions=%s",
		v.VideoID, logger.SanitizeForLog(name), v.Dimensions)
	return v, nil
}

func (s *VideoService) importFile(ctx context.Context, v *domain.Video, file *os.File) error {
	original := s.layout.OriginalPath(v)
	if err := os.Rename(file.Name(), original); err != nil {
		return fmt.Errorf("save upload: %w", err)
	}

	if err := s.transcoder.MakeThumbnail(ctx, original, s.layout.ThumbnailPath(v.VideoID)); err != nil {
		return fmt.Errorf("make thumbnail: %w", err)
	}

	dims, err := s.transcoder.GetDimensions(ctx, original)
	if err != nil {
		return fmt.Errorf("get dimensions: %w", err)
	}
	v.Dimensions = dims

	if err := s.catalog.Refresh(); err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	v.ID = len(s.catalog.Videos())
	s.catalog.Put(v)
	if err := s.catalog.Save(); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// ExtractAudio copies the audio track of a video out to its own file. It runs
// synchronously and only once per video.
func (s *VideoService) ExtractAudio(ctx context.Context, videoID string) error {
	v, err := s.Get(videoID)
	if err != nil {
		return err
	}
	if v.ExtractedAudio {
		return domain.ErrAudioExtracted
	}

	target := s.layout.AudioPath(v.VideoID)
	if err := s.transcoder.ExtractAudio(ctx, s.layout.OriginalPath(v), target); err != nil {
		fsutil.DeleteFile(target)
		return fmt.Errorf("extract audio: %w", err)
	}

	v, err = s.Get(videoID)
	if err != nil {
		return err
	}
	v.ExtractedAudio = true
	s.catalog.Put(v)
	if err := s.catalog.Save(); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	logger.Info.Printf("audio extracted for %s", v.VideoID)
	return nil
}

// RequestResize records the resize as processing and hands it to the job
// queue. It returns before any transcoding happens.
func (s *VideoService) RequestResize(ctx context.Context, videoID string, width, height int) error {
	if width <= 0 || height <= 0 {
		return domain.ErrInvalidDimensions
	}

	v, err := s.Get(videoID)
	if err != nil {
		return err
	}
	v.MarkResizing(width, height)
	s.catalog.Put(v)
	if err := s.catalog.Save(); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	if err := s.submitter.SubmitResize(ctx, videoID, width, height); err != nil {
		return fmt.Errorf("submit resize: %w", err)
	}
	return nil
}

// Asset resolves one stored file of a video. dimensions is only used for
// resizes and has the "WxH" form.
func (s *VideoService) Asset(videoID string, kind AssetKind, dimensions string) (*Asset, error) {
	v, err := s.Get(videoID)
	if err != nil {
		return nil, err
	}

	switch kind {
	case AssetThumbnail:
		return &Asset{Path: s.layout.ThumbnailPath(v.VideoID), MIMEType: "image/jpeg"}, nil

	case AssetAudio:
		if !v.ExtractedAudio {
			return nil, domain.ErrAssetNotFound
		}
		return &Asset{
			Path:         s.layout.AudioPath(v.VideoID),
			MIMEType:     "audio/aac",
			DownloadName: v.Name + "-audio.aac",
		}, nil

	case AssetResize:
		d, err := domain.ParseResizeKey(dimensions)
		if err != nil {
			return nil, err
		}
		r, ok := v.Resizes[d.String()]
		if !ok || r.Processing {
			return nil, domain.ErrAssetNotFound
		}
		return &Asset{
			Path:         s.layout.ResizePath(v, d.Width, d.Height),
			MIMEType:     videoMIMEType(v.Extension),
			DownloadName: fmt.Sprintf("%s-%s.%s", v.Name, d, v.Extension),
		}, nil

	case AssetOriginal:
		return &Asset{
			Path:         s.layout.OriginalPath(v),
			MIMEType:     videoMIMEType(v.Extension),
			DownloadName: v.Name + "." + v.Extension,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAssetType, kind)
	}
}

func videoMIMEType(ext string) string {
	if ext == "mov" {
		return "video/quicktime"
	}
	return "video/mp4"
}
