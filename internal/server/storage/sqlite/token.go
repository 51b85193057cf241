package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/resumeai/internal/models"
)

// RevokeToken отзывает access token до истечения его срока
func (s *Storage) RevokeToken(ctx context.Context, token *models.RevokedToken) error {
	query := `
		INSERT OR IGNORE INTO revoked_tokens (token_id, user_id, expires_at)
		VALUES (?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query, token.TokenID, token.UserID, token.ExpiresAt.Unix()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsRevoked сообщает, отозван ли token
func (s *Storage) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM revoked_tokens WHERE token_id = ?`, tokenID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return true, nil
}

// DeleteExpiredTokens removes records of tokens that expired before now
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
