// FILE: logbridge/src/internal/auth/authenticator.go
package auth

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"logbridge/src/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lixenwraith/log"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator validates credentials on the status endpoint. Syslog
// ingest itself is unauthenticated; RFC 3164 has no credential concept.
type Authenticator struct {
	cfg          *config.AuthConfig
	logger       *log.Logger
	basicUsers   map[string]string // username -> password hash
	bearerTokens map[string]bool   // token -> valid
	jwtParser    *jwt.Parser
	jwtKeyFunc   jwt.Keyfunc
}

// New creates an authenticator from config. Returns nil for type "none".
func New(cfg *config.AuthConfig, logger *log.Logger) (*Authenticator, error) {
	if cfg == nil || cfg.Type == "" || cfg.Type == "none" {
		return nil, nil
	}

	a := &Authenticator{
		cfg:          cfg,
		logger:       logger,
		basicUsers:   make(map[string]string),
		bearerTokens: make(map[string]bool),
	}

	if cfg.Type == "basic" && cfg.BasicAuth != nil {
		for _, user := range cfg.BasicAuth.Users {
			a.basicUsers[user.Username] = user.PasswordHash
		}
	}

	if cfg.Type == "bearer" && cfg.BearerAuth != nil {
		for _, token := range cfg.BearerAuth.Tokens {
			a.bearerTokens[token] = true
		}

		if cfg.BearerAuth.JWT != nil && cfg.BearerAuth.JWT.SigningKey != "" {
			a.jwtParser = jwt.NewParser(
				jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
				jwt.WithLeeway(5*time.Second),
				jwt.WithExpirationRequired(),
			)
			key := []byte(cfg.BearerAuth.JWT.SigningKey)
			a.jwtKeyFunc = func(token *jwt.Token) (any, error) {
				return key, nil
			}
		}
	}

	return a, nil
}

// CheckHTTP validates an Authorization header value.
func (a *Authenticator) CheckHTTP(header string) error {
	switch a.cfg.Type {
	case "basic":
		return a.checkBasic(header)
	case "bearer":
		return a.checkBearer(header)
	default:
		return fmt.Errorf("unsupported auth type: %s", a.cfg.Type)
	}
}

func (a *Authenticator) checkBasic(header string) error {
	payload, ok := strings.CutPrefix(header, "Basic ")
	if !ok {
		return fmt.Errorf("missing basic credentials")
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("malformed basic credentials")
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return fmt.Errorf("malformed basic credentials")
	}

	hash, exists := a.basicUsers[username]
	if !exists {
		// Compare against a dummy hash to keep timing uniform
		bcrypt.CompareHashAndPassword([]byte("$2a$10$000000000000000000000u"), []byte(password))
		return fmt.Errorf("unknown user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}

func (a *Authenticator) checkBearer(header string) error {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return fmt.Errorf("missing bearer token")
	}

	if a.bearerTokens[token] {
		return nil
	}

	if a.jwtParser != nil {
		parsed, err := a.jwtParser.Parse(token, a.jwtKeyFunc)
		if err != nil {
			return fmt.Errorf("invalid JWT: %w", err)
		}
		if !parsed.Valid {
			return fmt.Errorf("invalid JWT")
		}
		return nil
	}

	return fmt.Errorf("unknown token")
}
