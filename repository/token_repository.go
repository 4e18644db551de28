// file: repository/token_repository.go

package repository

import (
	"database/sql"
	"time"
	"worktrack-api/logger"

	"github.com/sirupsen/logrus"
)

// ITokenRepository defines the contract for the token revocation ledger.
type ITokenRepository interface {
	Revoke(tokenHash string, expiresAt time.Time) error
	IsRevoked(tokenHash string) (bool, error)
	PurgeExpired() (int64, error)
}

// TokenRepository implements ITokenRepository on postgres.
type TokenRepository struct {
	DB *sql.DB
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Revoke appends a ledger record for a token hash. Inserting the same hash
// twice is allowed; IsRevoked only asks whether at least one live record exists.
func (r *TokenRepository) Revoke(tokenHash string, expiresAt time.Time) error {
	log := logger.Log.WithFields(logrus.Fields{
		"expires_at": expiresAt,
	})
	log.Info("Executing query to revoke a token")

	query := `INSERT INTO revoked_tokens (token_hash, expires_at) VALUES ($1, $2)`
	_, err := r.DB.Exec(query, tokenHash, expiresAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute revoke token query")
		return err
	}
	return nil
}

// IsRevoked reports whether a live (non-expired) ledger record exists for the
// hash. Expired records are ignored; the expiry check on the token itself
// already rejects those.
func (r *TokenRepository) IsRevoked(tokenHash string) (bool, error) {
	var revoked bool
	query := `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_hash = $1 AND expires_at > now())`
	err := r.DB.QueryRow(query, tokenHash).Scan(&revoked)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute revocation lookup query")
		return false, err
	}
	return revoked, nil
}

// PurgeExpired deletes ledger records whose expiry has passed and returns the
// number of rows removed.
func (r *TokenRepository) PurgeExpired() (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM revoked_tokens WHERE expires_at <= now()`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute purge expired tokens query")
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Log.WithField("purged", n).Info("Purged expired revocation records")
	}
	return n, nil
}
