package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type videoFixture struct {
	catalog    *mocks.CatalogMock
	transcoder *mocks.TranscoderMock
	submitter  *mocks.SubmitterMock
	layout     domain.Layout
	svc        *VideoService
}

func newVideoFixture(t *testing.T) *videoFixture {
	f := &videoFixture{
		catalog:    mocks.NewCatalogMock(t),
		transcoder: mocks.NewTranscoderMock(t),
		submitter:  mocks.NewSubmitterMock(t),
		layout:     domain.NewLayout(t.TempDir()),
	}
	f.svc = NewVideoService(f.catalog, f.transcoder, f.submitter, f.layout)
	return f
}

func uploadFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "upload_*")
	require.NoError(t, err)
	_, err = f.WriteString("fake video")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f
}

func TestVideoService_List(t *testing.T) {
	f := newVideoFixture(t)
	videos := []*domain.Video{video(2, "bbbbbbbb", nil), video(1, "aaaaaaaa", nil)}
	f.catalog.EXPECT().Refresh().Return(nil).Once()
	f.catalog.EXPECT().Videos().Return(videos).Once()

	got, err := f.svc.List()

	require.NoError(t, err)
	assert.Equal(t, videos, got)
}

func TestVideoService_Import_Success(t *testing.T) {
	f := newVideoFixture(t)
	upload := uploadFile(t)

	f.transcoder.EXPECT().MakeThumbnail(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, source, target string) error {
			assert.FileExists(t, source)
			return os.WriteFile(target, []byte("jpeg"), 0644)
		}).Once()
	f.transcoder.EXPECT().GetDimensions(mock.Anything, mock.Anything).
		Return(domain.Dimensions{Width: 1920, Height: 1080}, nil).Once()
	f.catalog.EXPECT().Refresh().Return(nil).Once()
	f.catalog.EXPECT().Videos().Return([]*domain.Video{video(0, "aaaaaaaa", nil)}).Once()
	f.catalog.EXPECT().Put(mock.AnythingOfType("*domain.Video")).Once()
	f.catalog.EXPECT().Save().Return(nil).Once()

	v, err := f.svc.Import(context.Background(), "Holiday Trip.MP4", upload)

	require.NoError(t, err)
	assert.Equal(t, "Holiday Trip", v.Name)
	assert.Equal(t, "mp4", v.Extension)
	assert.Equal(t, 1, v.ID)
	assert.Len(t, v.VideoID, 8)
	assert.Equal(t, domain.Dimensions{Width: 1920, Height: 1080}, v.Dimensions)
	assert.Empty(t, v.Resizes)
	assert.FileExists(t, f.layout.OriginalPath(v))
	assert.FileExists(t, f.layout.ThumbnailPath(v.VideoID))
	assert.NoFileExists(t, upload.Name())
}

func TestVideoService_Import_UnsupportedFormat(t *testing.T) {
	f := newVideoFixture(t)

	v, err := f.svc.Import(context.Background(), "clip.avi", uploadFile(t))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Nil(t, v)
}

func TestVideoService_Import_ProbeFailureRemovesDirectory(t *testing.T) {
	f := newVideoFixture(t)

	f.transcoder.EXPECT().MakeThumbnail(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.transcoder.EXPECT().GetDimensions(mock.Anything, mock.Anything).
		Return(domain.Dimensions{}, errors.New("ffprobe failed (exit status 1)")).Once()

	v, err := f.svc.Import(context.Background(), "clip.mov", uploadFile(t))

	require.Error(t, err)
	assert.Nil(t, v)
	entries, err := os.ReadDir(f.layout.Root)
	require.NoError(t, err)
	assert.Empty(t, entries, "video directory should be removed")
}

func TestVideoService_ExtractAudio(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newVideoFixture(t)
		v := video(1, "ab12cd34", nil)
		f.catalog.EXPECT().Refresh().Return(nil).Times(2)
		f.catalog.EXPECT().FindByVideoID("ab12cd34").Return(v.Clone(), nil).Times(2)
		f.transcoder.EXPECT().
			ExtractAudio(mock.Anything, f.layout.OriginalPath(v), f.layout.AudioPath("ab12cd34")).
			Return(nil).Once()
		f.catalog.EXPECT().Put(mock.MatchedBy(func(v *domain.Video) bool { return v.ExtractedAudio })).Once()
		f.catalog.EXPECT().Save().Return(nil).Once()

		assert.NoError(t, f.svc.ExtractAudio(context.Background(), "ab12cd34"))
	})

	t.Run("only once", func(t *testing.T) {
		f := newVideoFixture(t)
		v := video(1, "ab12cd34", nil)
		v.ExtractedAudio = true
		f.catalog.EXPECT().Refresh().Return(nil).Once()
		f.catalog.EXPECT().FindByVideoID("ab12cd34").Return(v, nil).Once()

		assert.ErrorIs(t, f.svc.ExtractAudio(context.Background(), "ab12cd34"), domain.ErrAudioExtracted)
	})

	t.Run("failure deletes partial output", func(t *testing.T) {
		f := newVideoFixture(t)
		v := video(1, "ab12cd34", nil)
		target := f.layout.AudioPath("ab12cd34")
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))

		f.catalog.EXPECT().Refresh().Return(nil).Once()
		f.catalog.EXPECT().FindByVideoID("ab12cd34").Return(v, nil).Once()
		f.transcoder.EXPECT().ExtractAudio(mock.Anything, mock.Anything, target).
			RunAndReturn(func(_ context.Context, _, target string) error {
				_ = os.WriteFile(target, []byte("partial"), 0644)
				return errors.New("ffmpeg failed (exit status 1)")
			}).Once()

		err := f.svc.ExtractAudio(context.Background(), "ab12cd34")

		assert.Error(t, err)
		assert.NoFileExists(t, target)
	})
}

func TestVideoService_RequestResize(t *testing.T) {
	t.Run("marks processing then submits", func(t *testing.T) {
		f := newVideoFixture(t)
		f.catalog.EXPECT().Refresh().Return(nil).Once()
		f.catalog.EXPECT().FindByVideoID("ab12cd34").Return(video(1, "ab12cd34", nil), nil).Once()

		var saved bool
		f.catalog.EXPECT().Put(mock.MatchedBy(func(v *domain.Video) bool {
			return v.Resizes["320x240"].Processing
		})).Once()
		f.catalog.EXPECT().Save().RunAndReturn(func() error {
			saved = true
			return nil
		}).Once()
		f.submitter.EXPECT().SubmitResize(mock.Anything, "ab12cd34", 320, 240).
			RunAndReturn(func(context.Context, string, int, int) error {
				assert.True(t, saved, "record must be persisted before submission")
				return nil
			}).Once()

		assert.NoError(t, f.svc.RequestResize(context.Background(), "ab12cd34", 320, 240))
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		f := newVideoFixture(t)
		err := f.svc.RequestResize(context.Background(), "ab12cd34", 0, 240)
		assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
	})

	t.Run("unknown video", func(t *testing.T) {
		f := newVideoFixture(t)
		f.catalog.EXPECT().Refresh().Return(nil).Once()
		f.catalog.EXPECT().FindByVideoID("deadbeef").Return(nil, domain.ErrNotFound).Once()

		err := f.svc.RequestResize(context.Background(), "deadbeef", 320, 240)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("submission failure is reported", func(t *testing.T) {
		f := newVideoFixture(t)
		f.catalog.EXPECT().Refresh().Return(nil).Once()
		f.catalog.EXPECT().FindByVideoID("ab12cd34").Return(video(1, "ab12cd34", nil), nil).Once()
		f.catalog.EXPECT().Put(mock.Anything).Once()
		f.catalog.EXPECT().Save().Return(nil).Once()
		f.submitter.EXPECT().SubmitResize(mock.Anything, "ab12cd34", 320, 240).
			Return(errors.New("broken pipe")).Once()

		err := f.svc.RequestResize(context.Background(), "ab12cd34", 320, 240)
		assert.ErrorContains(t, err, "broken pipe")
	})
}

func TestVideoService_Asset(t *testing.T) {
	v := video(1, "ab12cd34", map[string]bool{"320x240": false, "640x480": true})
	v.Name = "holiday"
	v.ExtractedAudio = true

	tests := []struct {
		name       string
		kind       AssetKind
		dimensions string
		wantFile   string
		wantMIME   string
		wantName   string
		wantErr    error
	}{
		{name: "thumbnail", kind: AssetThumbnail, wantFile: "thumbnail.jpg", wantMIME: "image/jpeg"},
		{name: "audio", kind: AssetAudio, wantFile: "audio.aac", wantMIME: "audio/aac", wantName: "holiday-audio.aac"},
		{name: "original", kind: AssetOriginal, wantFile: "original.mp4", wantMIME: "video/mp4", wantName: "holiday.mp4"},
		{name: "finished resize", kind: AssetResize, dimensions: "320x240", wantFile: "320x240.mp4", wantMIME: "video/mp4", wantName: "holiday-320x240.mp4"},
		{name: "resize still processing", kind: AssetResize, dimensions: "640x480", wantErr: domain.ErrAssetNotFound},
		{name: "unknown resize", kind: AssetResize, dimensions: "100x100", wantErr: domain.ErrAssetNotFound},
		{name: "bad dimensions", kind: AssetResize, dimensions: "big", wantErr: domain.ErrInvalidResizeKey},
		{name: "unknown kind", kind: "subtitles", wantErr: domain.ErrInvalidAssetType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVideoFixture(t)
			f.catalog.EXPECT().Refresh().Return(nil).Once()
			f.catalog.EXPECT().FindByVideoID("ab12cd34").Return(v.Clone(), nil).Once()

			asset, err := f.svc.Asset("ab12cd34", tt.kind, tt.dimensions)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(f.layout.VideoDir("ab12cd34"), tt.wantFile), asset.Path)
			assert.Equal(t, tt.wantMIME, asset.MIMEType)
			assert.Equal(t, tt.wantName, asset.DownloadName)
		})
	}
}

func TestVideoService_Asset_AudioNotExtracted(t *testing.T) {
	f := newVideoFixture(t)
	f.catalog.EXPECT().Refresh().Return(nil).Once()
	f.catalog.EXPECT().FindByVideoID("ab12cd34").Return(video(1, "ab12cd34", nil), nil).Once()

	_, err := f.svc.Asset("ab12cd34", AssetAudio, "")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestQueueSubmitter(t *testing.T) {
	queue := &recordingQueue{}
	s := NewQueueSubmitter(queue)

	require.NoError(t, s.SubmitResize(context.Background(), "ab12cd34", 320, 240))

	assert.Equal(t, []domain.Job{domain.NewResizeJob("ab12cd34", 320, 240)}, queue.all())
}
