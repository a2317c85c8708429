package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

// UsernameResolver maps an owner to the username of the restaurant they own.
type UsernameResolver interface {
	UsernameForOwner(ctx context.Context, ownerID string) (string, error)
}

// Session is the authenticated caller of one request. It is built by
// Middleware and passed down through the request context.
type Session struct {
	User  User
	Token string

	resolver UsernameResolver
	once     sync.Once
	username string
	err      error
}

func NewSession(user User, token string, resolver UsernameResolver) *Session {
	return &Session{User: user, Token: token, resolver: resolver}
}

// Username returns the restaurant handle owned by the session user. It is
// resolved at most once per session; "" means the user owns no restaurant yet.
func (s *Session) Username(ctx context.Context) (string, error) {
	s.once.Do(func() {
		if s.resolver == nil {
			return
		}
		s.username, s.err = s.resolver.UsernameForOwner(ctx, s.User.ID)
	})
	return s.username, s.err
}

type (
	sessionKey    struct{}
	tokenErrorKey struct{}
)

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// SessionError explains why ctx carries no session: the verification error
// of a rejected bearer token, or ErrNoSession when none was sent.
func SessionError(ctx context.Context) error {
	if err, ok := ctx.Value(tokenErrorKey{}).(error); ok && err != nil {
		return err
	}
	return ErrNoSession
}

// Middleware attaches a Session to requests carrying a valid bearer token.
// Requests without a token, or with one that fails verification, pass through
// anonymously; routes that need a caller wrap themselves in RequireSession.
func Middleware(verifier TokenVerifier, resolver UsernameResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := verifier.Verify(token)
			if err != nil {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), tokenErrorKey{}, err)))
				return
			}

			session := NewSession(*user, token, resolver)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireSession rejects anonymous requests.
func RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, SessionError(r.Context()).Error())
			return
		}
		next(w, r)
	}
}

func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
