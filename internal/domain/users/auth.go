package users

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// tokenTTL es la validez de un token emitido. No hay revocación ni logout:
// un token vale hasta su expiración natural o el reinicio del proceso.
const tokenTTL = time.Hour

var (
	// ErrTokenInvalid: el token no existe en el store.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired: el token existe pero su expireAt ya pasó.
	// La entrada no se purga; los tokens vencidos se ignoran lazy.
	ErrTokenExpired = errors.New("token expired")
)

// Token es la sesión asociada a un token emitido.
type Token struct {
	UserID   int64
	ExpireAt time.Time
}

// TokenGrant es la respuesta de Authenticate.
type TokenGrant struct {
	ID       int64
	Token    string
	ExpireAt time.Time
}

// TokenStore guarda los tokens emitidos. Solo memoria de proceso:
// no sobrevive reinicios, incluso cuando los usuarios van a Postgres.
type TokenStore interface {
	Save(token string, t Token)
	Get(token string) (Token, bool)
}

type memoryTokenStore struct {
	mu      sync.RWMutex
	byToken map[string]Token
}

func NewTokenStore() TokenStore {
	return &memoryTokenStore{byToken: make(map[string]Token)}
}

func (s *memoryTokenStore) Save(token string, t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = t
}

func (s *memoryTokenStore) Get(token string) (Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byToken[token]
	return t, ok
}

// Authenticate verifica credenciales y emite un token con expiración.
// Ante cualquier mismatch devuelve el mismo ErrNotFound: no se distingue
// "username malo" de "password malo" para no permitir enumerar usuarios.
func (s *Service) Authenticate(ctx context.Context, username, pass string) (TokenGrant, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return TokenGrant{}, err
	}

	for _, u := range all {
		if u.Username != username {
			continue
		}
		if !s.hasher.Verify(pass, u.Password) {
			break
		}

		token := uuid.NewString()
		expireAt := s.now().Add(tokenTTL)
		s.tokens.Save(token, Token{UserID: u.ID, ExpireAt: expireAt})

		return TokenGrant{ID: u.ID, Token: token, ExpireAt: expireAt}, nil
	}

	return TokenGrant{}, ErrNotFound
}

// CurrentUser resuelve token -> usuario:
// token ausente => ErrTokenInvalid; vencido => ErrTokenExpired;
// usuario borrado después de emitir el token => ErrNotFound.
func (s *Service) CurrentUser(ctx context.Context, token string) (User, error) {
	t, ok := s.tokens.Get(token)
	if !ok {
		return User{}, ErrTokenInvalid
	}

	if s.now().After(t.ExpireAt) {
		return User{}, ErrTokenExpired
	}

	return s.repo.GetByID(ctx, t.UserID)
}
