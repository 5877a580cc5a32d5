package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"imageGallery/internal/config"
	"imageGallery/internal/models"
	"imageGallery/internal/storage"
)

// Storage is an append-only journal of accepted uploads. The gallery itself
// is still read from the storage directory.
type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Storage) migrate(ctx context.Context) error {
	const op = "storage.postgres.migrate"

	query := `
        CREATE TABLE IF NOT EXISTS uploads (
            filename       TEXT PRIMARY KEY,
            original_name  TEXT NOT NULL,
            content_type   TEXT NOT NULL,
            size_bytes     BIGINT NOT NULL,
            client_addr    TEXT NOT NULL DEFAULT '',
            status         TEXT NOT NULL,
            thumbnail_path TEXT NOT NULL DEFAULT '',
            created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`

	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) RecordUpload(ctx context.Context, upload models.Upload) error {
	const op = "storage.postgres.RecordUpload"

	query := `
        INSERT INTO uploads (filename, original_name, content_type, size_bytes, client_addr, status)
        VALUES ($1, $2, $3, $4, $5, $6)`

	status := upload.Status
	if status == "" {
		status = models.StatusUploaded
	}

	_, err := s.DB.ExecContext(ctx, query,
		upload.Filename,
		upload.OriginalName,
		upload.ContentType,
		upload.Size,
		upload.ClientAddr,
		status,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateUploadStatus(ctx context.Context, filename string, status string, thumbnailPath string) error {
	const op = "storage.postgres.UpdateUploadStatus"

	query := `
        UPDATE uploads
        SET status = $1, thumbnail_path = $2, updated_at = NOW()
        WHERE filename = $3`

	result, err := s.DB.ExecContext(ctx, query, status, thumbnailPath, filename)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: upload %s: %w", op, filename, storage.ErrImageNotFound)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
