package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/bookshelf/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	editorSubject = "editor"
	tokenTTL      = 24 * time.Hour
)

// EditorAuth guards write access to the catalogue behind a single shared
// editor password. When no password hash or secret is configured, it is
// disabled and every caller may write.
type EditorAuth struct {
	passwordHash []byte
	jwtSecret    []byte
	now          func() time.Time
}

// NewEditorAuth creates an EditorAuth from a bcrypt hash of the editor password
// and the HMAC secret used to sign tokens.
func NewEditorAuth(passwordHash, jwtSecret string) *EditorAuth {
	return &EditorAuth{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		now:          time.Now,
	}
}

// HashPassword returns a bcrypt hash of password suitable for EDITOR_PASSWORD_HASH.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Enabled reports whether write access requires a token.
func (a *EditorAuth) Enabled() bool {
	return len(a.passwordHash) > 0 && len(a.jwtSecret) > 0
}

// Login verifies the editor password and returns a signed JWT token string.
func (a *EditorAuth) Login(password string) (string, error) {
	if !a.Enabled() {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	token, err := a.generateJWT()
	if err != nil {
		return "", fmt.Errorf("generate jwt: %w", err)
	}
	return token, nil
}

// ValidateToken parses and validates a JWT token string issued by Login.
func (a *EditorAuth) ValidateToken(tokenString string) error {
	if !a.Enabled() {
		return domain.ErrUnauthorized
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil || !token.Valid {
		return domain.ErrUnauthorized
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub != editorSubject {
		return domain.ErrUnauthorized
	}
	return nil
}

func (a *EditorAuth) generateJWT() (string, error) {
	now := a.now()
	claims := jwt.MapClaims{
		"sub": editorSubject,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}
