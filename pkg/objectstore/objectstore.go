// Package objectstore is the photo-upload collaborator: it issues
// short-lived write URLs and stores bytes under a public URL. The local
// implementation keeps files on disk and signs upload tokens so the
// handler serving the write URL can trust the key and content type.
package objectstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrBadKey = errors.New("invalid object key")

type Store interface {
	// PresignPut returns a relative URL a client can PUT bytes to for a
	// limited time.
	PresignPut(key, contentType string) (string, error)
	// Put stores the bytes and returns the public URL.
	Put(key, contentType string, r io.Reader) (string, error)
	PublicURL(key string) string
}

type uploadClaims struct {
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	jwt.RegisteredClaims
}

// Local stores objects under Dir and serves them from PublicBase
// (the router's static mount). Presigned URLs are
// UploadBase/<signed token>.
type Local struct {
	Dir        string
	PublicBase string
	UploadBase string
	Secret     string
	TTL        time.Duration
}

func NewLocal(dir, secret string) *Local {
	return &Local{
		Dir:        dir,
		PublicBase: "/uploads",
		UploadBase: "/admin/uploads",
		Secret:     secret,
		TTL:        15 * time.Minute,
	}
}

func (l *Local) PresignPut(key, contentType string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	claims := uploadClaims{
		Key:         key,
		ContentType: contentType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(l.TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(l.Secret))
	if err != nil {
		return "", err
	}
	return l.UploadBase + "/" + tok, nil
}

// VerifyToken resolves a presigned-upload token back to its key and
// content type, rejecting expired or tampered tokens.
func (l *Local) VerifyToken(token string) (key, contentType string, err error) {
	var claims uploadClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(l.Secret), nil
	})
	if err != nil || !t.Valid {
		return "", "", errors.New("invalid upload token")
	}
	return claims.Key, claims.ContentType, nil
}

func (l *Local) Put(key, contentType string, r io.Reader) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(l.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return l.PublicURL(key), nil
}

func (l *Local) PublicURL(key string) string {
	return l.PublicBase + "/" + key
}

func cleanKey(key string) (string, error) {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if key == "" || key == "." || strings.Contains(key, "..") {
		return "", ErrBadKey
	}
	return key, nil
}
