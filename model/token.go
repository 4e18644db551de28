// file: model/token.go

package model

import "time"

// RevokedToken is one entry in the token revocation ledger. Only the SHA-256
// hash of the bearer token is stored, never the token itself. Records become
// dead weight once ExpiresAt passes and may be purged.
type RevokedToken struct {
	ID        int       `json:"id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
