package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/resumeai/internal/models"
	"github.com/iudanet/resumeai/internal/server/storage"
)

const resumeColumns = `id, user_id, session_id, title, template, language, data, version, created_at, updated_at`

// SaveResume создает резюме или заменяет существующее с тем же id
func (s *Storage) SaveResume(ctx context.Context, resume *models.Resume) error {
	data, err := json.Marshal(resume.Data)
	if err != nil {
		return fmt.Errorf("failed to encode resume data: %w", err)
	}

	query := `
		INSERT INTO resumes (` + resumeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			template = excluded.template,
			language = excluded.language,
			data = excluded.data,
			version = excluded.version,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.SessionID,
		resume.Title,
		resume.Template,
		string(resume.Language),
		string(data),
		resume.Version,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	return nil
}

// GetResume возвращает резюме пользователя по id
func (s *Storage) GetResume(ctx context.Context, userID, resumeID string) (*models.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = ? AND user_id = ?`
	return scanResume(s.db.QueryRowContext(ctx, query, resumeID, userID))
}

// GetSessionResume возвращает резюме сессии
func (s *Storage) GetSessionResume(ctx context.Context, userID, sessionID string) (*models.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE session_id = ? AND user_id = ?`
	return scanResume(s.db.QueryRowContext(ctx, query, sessionID, userID))
}

// ListResumes возвращает страницу резюме пользователя, новые первыми
func (s *Storage) ListResumes(ctx context.Context, userID string, limit, offset int) ([]*models.Resume, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM resumes WHERE user_id = ?`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count resumes: %w", err)
	}

	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]*models.Resume, 0, limit)
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, 0, err
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate resumes: %w", err)
	}

	return resumes, total, nil
}

func scanResume(row rowScanner) (*models.Resume, error) {
	resume := &models.Resume{}
	var data string

	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.SessionID,
		&resume.Title,
		&resume.Template,
		&resume.Language,
		&data,
		&resume.Version,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &resume.Data); err != nil {
		return nil, fmt.Errorf("failed to decode resume data: %w", err)
	}

	return resume, nil
}
