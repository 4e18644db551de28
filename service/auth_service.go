package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
	"worktrack-api/config"
	"worktrack-api/logger"
	"worktrack-api/model"
	"worktrack-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown username and wrong password, so
// the login response cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService issues, verifies and revokes bearer tokens.
type AuthService struct {
	userRepo  repository.IUserRepository
	tokenRepo repository.ITokenRepository
}

func NewAuthService(userRepo repository.IUserRepository, tokenRepo repository.ITokenRepository) *AuthService {
	return &AuthService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func getJwtKey() []byte {
	return []byte(config.AppConfig.JWT.SecretKey)
}

func tokenTTL() time.Duration {
	return time.Duration(config.AppConfig.JWT.ExpiryHours) * time.Hour
}

// IsAdminOrOwner is the single authorization rule applied across the API: an
// operation on a resource proceeds if the caller is an administrator or owns
// the resource.
func IsAdminOrOwner(callerID int, callerRole string, ownerID int) bool {
	return callerRole == string(model.RoleAdmin) || callerID == ownerID
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// HashToken computes the one-way hash under which a bearer token appears in
// the revocation ledger.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Login authenticates a username/password pair and issues a signed token.
// Unknown usernames, inactive accounts and wrong passwords all surface as
// ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, *model.PublicUser, error) {
	user, err := s.userRepo.GetActiveByUsername(username)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")
	return token, user.Public(), nil
}

// GenerateToken signs a token carrying the user's identity and role, expiring
// after the configured horizon (24h by default).
func (s *AuthService) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &model.AppClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(getJwtKey())
	if err != nil {
		logger.Log.WithError(err).WithField("username", user.Username).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// VerifyToken checks signature and expiry and returns the embedded claims.
func (s *AuthService) VerifyToken(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return getJwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// IsRevoked consults the revocation ledger for the token's hash.
func (s *AuthService) IsRevoked(tokenString string) (bool, error) {
	return s.tokenRepo.IsRevoked(HashToken(tokenString))
}

// RevokeToken appends the token's hash to the ledger. The record's expiry
// matches the token's maximum lifetime, so it never needs to outlive the
// token it blocks.
func (s *AuthService) RevokeToken(tokenString string) error {
	return s.tokenRepo.Revoke(HashToken(tokenString), time.Now().Add(tokenTTL()))
}
