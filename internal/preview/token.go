// Package preview implements draft preview mode.
//
// Entering preview verifies the requested record against the CMS using its
// draft key, then stores {slug, draftKey} in a signed, expiring cookie.
// Detail pages forward the draft key while the cookie names their record.
package preview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/mashirovoc/blog/internal/platform/errors"
)

// DefaultTTL bounds how long a preview cookie stays valid.
const DefaultTTL = time.Hour

const issuer = "blog-preview"

// Data is the preview state carried between requests.
type Data struct {
	Slug     string
	DraftKey string
}

// Matches reports whether the preview targets contentID.
func (d Data) Matches(contentID string) bool {
	return d.Slug != "" && d.Slug == strings.TrimSpace(contentID)
}

// Config configures a Signer. An empty Secret disables preview.
type Config struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

// Signer issues and verifies preview tokens (HS256 JWTs).
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type claims struct {
	jwt.RegisteredClaims
	DraftKey string `json:"draft_key"`
}

// NewSigner builds a signer from cfg.
func NewSigner(cfg Config) *Signer {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Signer{secret: cfg.Secret, ttl: ttl, now: now}
}

// Enabled reports whether a signing secret is configured.
func (s *Signer) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// TTL returns the token lifetime.
func (s *Signer) TTL() time.Duration {
	if s == nil {
		return DefaultTTL
	}
	return s.ttl
}

// Sign issues a token for d.
func (s *Signer) Sign(d Data) (string, error) {
	if !s.Enabled() {
		return "", apperrors.New(apperrors.CodePreviewDisabled, "preview secret is not configured")
	}
	now := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   d.Slug,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		DraftKey: d.DraftKey,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign preview token: %w", err)
	}
	return signed, nil
}

// Verify checks a token's signature, issuer and expiry and returns its data.
func (s *Signer) Verify(token string) (Data, error) {
	if !s.Enabled() {
		return Data{}, apperrors.New(apperrors.CodePreviewDisabled, "preview secret is not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Data{}, apperrors.New(apperrors.CodePreviewTokenInvalid, "preview token is required")
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Data{}, apperrors.Wrap(apperrors.CodePreviewTokenInvalid, "preview token expired", err)
		}
		return Data{}, apperrors.Wrap(apperrors.CodePreviewTokenInvalid, "preview token invalid", err)
	}
	if parsed.Subject == "" {
		return Data{}, apperrors.New(apperrors.CodePreviewTokenInvalid, "preview token subject is required")
	}
	return Data{Slug: parsed.Subject, DraftKey: parsed.DraftKey}, nil
}
