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

const sessionColumns = `id, user_id, status, language, progress, answers, message_count, created_at, updated_at, completed_at`

// CreateSession сохраняет сессию вместе с первыми сообщениями
func (s *Storage) CreateSession(ctx context.Context, session *models.Session, messages ...*models.Message) error {
	progress, answers, err := encodeSession(session)
	if err != nil {
		return err
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		query := `INSERT INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, query,
			session.ID,
			session.UserID,
			string(session.Status),
			string(session.Language),
			progress,
			answers,
			session.MessageCount,
			session.CreatedAt,
			session.UpdatedAt,
			session.CompletedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
		return insertMessages(ctx, tx, messages)
	})
}

// GetSession возвращает сессию пользователя
func (s *Storage) GetSession(ctx context.Context, userID, sessionID string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ? AND user_id = ?`
	return scanSession(s.db.QueryRowContext(ctx, query, sessionID, userID))
}

// ListSessions возвращает страницу сессий пользователя, новые первыми
func (s *Storage) ListSessions(ctx context.Context, userID string, filter storage.SessionFilter) ([]*models.Session, int, error) {
	where := ` WHERE user_id = ?`
	args := []any{userID}
	if filter.Status != "" {
		where += ` AND status = ?`
		args = append(args, string(filter.Status))
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions` + where + ` ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]*models.Session, 0, filter.Limit)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, total, nil
}

// UpdateSession сохраняет изменения сессии и добавляет сообщения одной транзакцией
func (s *Storage) UpdateSession(ctx context.Context, session *models.Session, messages ...*models.Message) error {
	progress, answers, err := encodeSession(session)
	if err != nil {
		return err
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		query := `
			UPDATE sessions
			SET status = ?, language = ?, progress = ?, answers = ?, message_count = ?, updated_at = ?, completed_at = ?
			WHERE id = ? AND user_id = ?
		`
		result, err := tx.ExecContext(ctx, query,
			string(session.Status),
			string(session.Language),
			progress,
			answers,
			session.MessageCount,
			session.UpdatedAt,
			session.CompletedAt,
			session.ID,
			session.UserID,
		)
		if err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}
		if err := expectAffected(result, storage.ErrSessionNotFound); err != nil {
			return err
		}
		return insertMessages(ctx, tx, messages)
	})
}

// DeleteSession удаляет сессию. Сообщения и резюме удаляются каскадно.
func (s *Storage) DeleteSession(ctx context.Context, userID, sessionID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ? AND user_id = ?`, sessionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return expectAffected(result, storage.ErrSessionNotFound)
}

// ListMessages возвращает сообщения сессии в порядке добавления
func (s *Storage) ListMessages(ctx context.Context, sessionID string) ([]*models.Message, error) {
	query := `
		SELECT id, session_id, role, content, extracted, created_at
		FROM messages
		WHERE session_id = ?
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		var extracted sql.NullString
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &extracted, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if extracted.Valid && extracted.String != "" {
			if err := json.Unmarshal([]byte(extracted.String), &msg.Extracted); err != nil {
				return nil, fmt.Errorf("failed to decode message metadata: %w", err)
			}
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

func insertMessages(ctx context.Context, tx *sql.Tx, messages []*models.Message) error {
	query := `
		INSERT INTO messages (id, session_id, role, content, extracted, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	for _, msg := range messages {
		var extracted *string
		if len(msg.Extracted) > 0 {
			data, err := json.Marshal(msg.Extracted)
			if err != nil {
				return fmt.Errorf("failed to encode message metadata: %w", err)
			}
			s := string(data)
			extracted = &s
		}

		if _, err := tx.ExecContext(ctx, query, msg.ID, msg.SessionID, string(msg.Role), msg.Content, extracted, msg.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}
	}
	return nil
}

func encodeSession(session *models.Session) (progress, answers string, err error) {
	p, err := json.Marshal(session.Progress)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode progress: %w", err)
	}

	a := session.Answers
	if a == nil {
		a = map[string]string{}
	}
	ans, err := json.Marshal(a)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode answers: %w", err)
	}

	return string(p), string(ans), nil
}

func scanSession(row rowScanner) (*models.Session, error) {
	session := &models.Session{}
	var (
		progress    string
		answers     string
		completedAt sql.NullTime
	)

	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Status,
		&session.Language,
		&progress,
		&answers,
		&session.MessageCount,
		&session.CreatedAt,
		&session.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal([]byte(progress), &session.Progress); err != nil {
		return nil, fmt.Errorf("failed to decode progress: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &session.Answers); err != nil {
		return nil, fmt.Errorf("failed to decode answers: %w", err)
	}
	if completedAt.Valid {
		session.CompletedAt = &completedAt.Time
	}

	return session, nil
}
