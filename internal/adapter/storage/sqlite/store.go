package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/port"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

const dbName = "vidq.db"

// Store is the catalog backed by a SQLite database. Like the JSON backend it
// works on an in-memory copy; Save upserts every video in one transaction.
type Store struct {
	db *sql.DB

	mu     sync.RWMutex
	videos []*domain.Video
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA foreign_keys = ON",
				"PRAGMA cache_size = -8000", // 8MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One writer per process; other processes wait on busy_timeout.
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{db: db}
	if err := s.Refresh(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Refresh() error {
	ctx := context.Background()

	rows, err := s.db.QueryContext(ctx, `
		SELECT video_id, seq, name, extension, width, height, user_id, extracted_audio
		FROM videos
		ORDER BY position DESC`)
	if err != nil {
		return fmt.Errorf("query videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var videos []*domain.Video
	byID := make(map[string]*domain.Video)
	for rows.Next() {
		v := &domain.Video{Resizes: make(map[string]domain.Resize)}
		if err := rows.Scan(&v.VideoID, &v.ID, &v.Name, &v.Extension,
			&v.Dimensions.Width, &v.Dimensions.Height, &v.UserID, &v.ExtractedAudio); err != nil {
			return fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
		byID[v.VideoID] = v
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate videos: %w", err)
	}
	_ = rows.Close()

	resizes, err := s.db.QueryContext(ctx, `SELECT video_id, key, processing FROM resizes`)
	if err != nil {
		return fmt.Errorf("query resizes: %w", err)
	}
	defer func() { _ = resizes.Close() }()

	for resizes.Next() {
		var videoID, key string
		var processing bool
		if err := resizes.Scan(&videoID, &key, &processing); err != nil {
			return fmt.Errorf("scan resize: %w", err)
		}
		if v, ok := byID[videoID]; ok {
			v.Resizes[key] = domain.Resize{Processing: processing}
		}
	}
	if err := resizes.Err(); err != nil {
		return fmt.Errorf("iterate resizes: %w", err)
	}

	s.mu.Lock()
	s.videos = videos
	s.mu.Unlock()
	return nil
}

func (s *Store) Save() error {
	ctx := context.Background()

	s.mu.RLock()
	videos := make([]*domain.Video, len(s.videos))
	for i, v := range s.videos {
		videos[i] = v.Clone()
	}
	s.mu.RUnlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, v := range videos {
		// The head of the list is the newest video and gets the highest position.
		position := len(videos) - i
		_, err := tx.ExecContext(ctx, `
			INSERT INTO videos (video_id, seq, name, extension, width, height, user_id, extracted_audio, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(video_id) DO UPDATE SET
				seq = excluded.seq,
				name = excluded.name,
				extension = excluded.extension,
				width = excluded.width,
				height = excluded.height,
				user_id = excluded.user_id,
				extracted_audio = excluded.extracted_audio,
				position = excluded.position`,
			v.VideoID, v.ID, v.Name, v.Extension, v.Dimensions.Width, v.Dimensions.Height,
			v.UserID, v.ExtractedAudio, position)
		if err != nil {
			return fmt.Errorf("upsert video %s: %w", v.VideoID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM resizes WHERE video_id = ?`, v.VideoID); err != nil {
			return fmt.Errorf("clear resizes of %s: %w", v.VideoID, err)
		}
		for key, r := range v.Resizes {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO resizes (video_id, key, processing) VALUES (?, ?, ?)`,
				v.VideoID, key, r.Processing); err != nil {
				return fmt.Errorf("insert resize %s of %s: %w", key, v.VideoID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}
	return nil
}

func (s *Store) FindByVideoID(videoID string) (*domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.videos {
		if v.VideoID == videoID {
			return v.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) Videos() []*domain.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Video, 0, len(s.videos))
	for _, v := range s.videos {
		out = append(out, v.Clone())
	}
	return out
}

func (s *Store) Put(v *domain.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := v.Clone()
	for i, existing := range s.videos {
		if existing.VideoID == v.VideoID {
			s.videos[i] = c
			return
		}
	}
	s.videos = append([]*domain.Video{c}, s.videos...)
}

var _ port.Catalog = (*Store)(nil)
