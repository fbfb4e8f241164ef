package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
	"github.com/parthdk16/Restaurant-Management-System-sub001/utils"
)

// AuthService handles admin login, profile and sign-out. Sign-out puts
// the token id on a Redis revocation list; without Redis it degrades to
// client-side token discard.
type AuthService struct {
	adminRepo *repository.AdminRepository
	rdb       *redis.Client
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, rdb *redis.Client, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		adminRepo: repo,
		rdb:       rdb,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Login(email, password string) (string, *entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID, admin.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, admin, nil
}

func (s *AuthService) GetProfile(adminID uint) (*entity.Admin, error) {
	return s.adminRepo.FindByID(adminID)
}

// Logout revokes the token id for the token's maximum remaining life.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	return s.rdb.Set(ctx, revocationKey(jti), "1", s.jwtTTL).Err()
}

func (s *AuthService) IsRevoked(ctx context.Context, jti string) bool {
	if s.rdb == nil || jti == "" {
		return false
	}
	n, err := s.rdb.Exists(ctx, revocationKey(jti)).Result()
	return err == nil && n > 0
}

func revocationKey(jti string) string { return "auth:revoked:" + jti }
