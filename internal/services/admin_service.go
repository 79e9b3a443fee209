package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/mindcheck/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminDisabled        = errors.New("admin access disabled")
	ErrInvalidAdminPassword = errors.New("invalid admin password")
	ErrInvalidAdminToken    = errors.New("invalid admin token")
)

const (
	AdminRole            = "catalog_admin"
	defaultAdminTokenTTL = 12 * time.Hour
	adminTokenIssuer     = "mindcheck"
)

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminService guards catalog maintenance endpoints. Access is disabled unless
// a bcrypt password hash is configured.
type AdminService struct {
	passwordHash []byte
	secretKey    []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

func NewAdminService(passwordHash string, secretKey string, tokenTTL time.Duration) *AdminService {
	if tokenTTL <= 0 {
		tokenTTL = defaultAdminTokenTTL
	}
	return &AdminService{
		passwordHash: []byte(strings.TrimSpace(passwordHash)),
		secretKey:    []byte(secretKey),
		tokenTTL:     tokenTTL,
		now:          time.Now,
	}
}

func (service *AdminService) Enabled() bool {
	return len(service.passwordHash) > 0 && len(service.secretKey) > 0
}

// Login checks the password and issues a signed admin token.
func (service *AdminService) Login(password string) (string, time.Time, error) {
	if !service.Enabled() {
		return "", time.Time{}, ErrAdminDisabled
	}
	if err := bcrypt.CompareHashAndPassword(service.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidAdminPassword
	}

	tokenID, err := security.NewTokenID()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate token id: %w", err)
	}

	now := service.now()
	expiresAt := now.Add(service.tokenTTL)
	claims := AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    adminTokenIssuer,
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign admin token: %w", err)
	}
	return signed, expiresAt, nil
}

func (service *AdminService) VerifyToken(raw string) (*AdminClaims, error) {
	if !service.Enabled() {
		return nil, ErrAdminDisabled
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(token *jwt.Token) (any, error) {
		return service.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(adminTokenIssuer),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidAdminToken
	}
	if claims.Role != AdminRole {
		return nil, ErrInvalidAdminToken
	}
	return claims, nil
}
