package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/bnema/vidq/internal/adapter/http/validation"
	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/infrastructure/fsutil"
	"github.com/bnema/vidq/internal/infrastructure/logger"
	"github.com/bnema/vidq/internal/service"
)

type VideoService interface {
	List() ([]*domain.Video, error)
	Import(ctx context.Context, filename string, file *os.File) (*domain.Video, error)
	ExtractAudio(ctx context.Context, videoID string) error
	RequestResize(ctx context.Context, videoID string, width, height int) error
	Asset(videoID string, kind service.AssetKind, dimensions string) (*service.Asset, error)
}

type Handlers struct {
	videoSvc  VideoService
	uploadDir string
	maxSizeMB int
}

// NewHandlers builds the API handlers. Uploads are buffered in uploadDir,
// which must be on the same filesystem as the video storage.
func NewHandlers(videoSvc VideoService, uploadDir string, maxSizeMB int) *Handlers {
	return &Handlers{
		videoSvc:  videoSvc,
		uploadDir: uploadDir,
		maxSizeMB: maxSizeMB,
	}
}

type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type resizeRequest struct {
	VideoID string `json:"videoId"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn.Printf("write response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Status: "success", Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Status: "error", Message: message})
}

// writeServiceError maps service errors to a status code. Unexpected errors
// are logged and hidden from the client.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Video not found!")
	case errors.Is(err, domain.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, "Asset not found!")
	case errors.Is(err, domain.ErrAudioExtracted):
		writeError(w, http.StatusBadRequest, "The audio has already been extracted for this video.")
	case errors.Is(err, domain.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, "Only these formats are allowed: mov, mp4")
	case errors.Is(err, domain.ErrInvalidDimensions):
		writeError(w, http.StatusBadRequest, "Width and height must be positive integers.")
	case errors.Is(err, domain.ErrInvalidResizeKey):
		writeError(w, http.StatusBadRequest, "Dimensions must have the form WIDTHxHEIGHT.")
	case errors.Is(err, domain.ErrInvalidAssetType):
		writeError(w, http.StatusBadRequest, "Asset type must be one of: thumbnail, audio, resize, original.")
	default:
		logger.Error.Printf("%s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "Something unexpected happened.")
	}
}

func (h *Handlers) ListVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := h.videoSvc.List()
		if err != nil {
			writeServiceError(w, "list videos", err)
			return
		}
		if videos == nil {
			videos = []*domain.Video{}
		}
		writeJSON(w, http.StatusOK, videos)
	}
}

// UploadVideo takes the raw request body as the video file. The original
// name comes from the filename header.
func (h *Handlers) UploadVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base, ext, err := validation.UploadName(r.Header.Get("filename"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "The filename header is required.")
			return
		}
		name := base + "." + ext
		if !domain.IsSupportedExtension(ext) {
			writeServiceError(w, "upload video", domain.ErrUnsupportedFormat)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, int64(h.maxSizeMB)*1024*1024)

		tmpFile, err := os.CreateTemp(h.uploadDir, "upload-*.tmp")
		if err != nil {
			writeServiceError(w, "create upload file", err)
			return
		}
		defer fsutil.DeleteFile(tmpFile.Name())
		defer tmpFile.Close() //nolint:errcheck

		if _, err := io.Copy(tmpFile, r.Body); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "File too large")
				return
			}
			logger.Warn.Printf("upload of %s interrupted: %v", logger.SanitizeForLog(name), err)
			writeError(w, http.StatusBadRequest, "Upload interrupted")
			return
		}

		if _, err := tmpFile.Seek(0, io.SeekStart); err != nil {
			writeServiceError(w, "rewind upload", err)
			return
		}
		mime, allowed, err := validation.ValidateMagicBytes(tmpFile)
		if err != nil {
			writeServiceError(w, "detect file type", err)
			return
		}
		if !allowed {
			logger.Warn.Printf("rejected upload %s with content type %s", logger.SanitizeForLog(name), mime)
			writeServiceError(w, "upload video", domain.ErrUnsupportedFormat)
			return
		}

		if _, err := h.videoSvc.Import(r.Context(), name, tmpFile); err != nil {
			writeServiceError(w, "import video", err)
			return
		}

		writeMessage(w, http.StatusCreated, "The file was uploaded successfully!")
	}
}

func (h *Handlers) ExtractAudio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID := r.URL.Query().Get("videoId")
		if videoID == "" {
			writeError(w, http.StatusBadRequest, "The videoId parameter is required.")
			return
		}

		if err := h.videoSvc.ExtractAudio(r.Context(), videoID); err != nil {
			writeServiceError(w, "extract audio", err)
			return
		}

		writeMessage(w, http.StatusOK, "The audio was extracted successfully!")
	}
}

// ResizeVideo only records the request; the primary's job queue does the work.
func (h *Handlers) ResizeVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resizeRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.VideoID == "" {
			writeError(w, http.StatusBadRequest, "The videoId field is required.")
			return
		}

		if err := h.videoSvc.RequestResize(r.Context(), req.VideoID, req.Width, req.Height); err != nil {
			writeServiceError(w, "request resize", err)
			return
		}

		writeMessage(w, http.StatusOK, "The video is now being processed!")
	}
}

// VideoAsset streams one stored file. Everything but the thumbnail is sent
// as a download.
func (h *Handlers) VideoAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		videoID := q.Get("videoId")
		if videoID == "" {
			writeError(w, http.StatusBadRequest, "The videoId parameter is required.")
			return
		}

		asset, err := h.videoSvc.Asset(videoID, service.AssetKind(q.Get("type")), q.Get("dimensions"))
		if err != nil {
			writeServiceError(w, "resolve asset", err)
			return
		}

		f, err := os.Open(asset.Path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				writeServiceError(w, "open asset", domain.ErrAssetNotFound)
				return
			}
			writeServiceError(w, "open asset", err)
			return
		}
		defer f.Close() //nolint:errcheck

		info, err := f.Stat()
		if err != nil {
			writeServiceError(w, "stat asset", err)
			return
		}

		w.Header().Set("Content-Type", asset.MIMEType)
		if asset.DownloadName != "" {
			w.Header().Set("Content-Disposition", validation.ContentDisposition(asset.DownloadName, false))
		}
		http.ServeContent(w, r, "", info.ModTime(), f)
	}
}
