package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/errs"
	"github.com/nsahli/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authMiddleware struct {
	responder Responder
	secret    []byte
}

func newAuthMiddleware(secret string) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		secret:    []byte(secret),
	}
}

// authenticate verifies the Bearer token and threads the caller's identity
// through the request context. Role is not checked here; that is the admin
// gate's job.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errs.ErrInvalidToken
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			m.responder.WriteError(w, errs.NewInvalidTokenError())
			return
		}

		subject, err := claims.GetSubject()
		if err != nil {
			m.responder.WriteError(w, errs.NewInvalidTokenError())
			return
		}
		userID, err := uuid.Parse(subject)
		if err != nil {
			m.responder.WriteError(w, errs.NewInvalidTokenError())
			return
		}

		email, _ := claims["email"].(string)

		updatedReq := r.WithContext(ctxWithIdentity(r.Context(), userID, email))
		next.ServeHTTP(w, updatedReq)
	})
}

// gateDecision is the terminal state of an admin role check.
type gateDecision int

const (
	decisionDenied gateDecision = iota
	decisionGranted
)

// roleLookup resolves the profile carrying a caller's role.
type roleLookup interface {
	FindByID(id uuid.UUID) (*models.Profile, error)
}

// adminGate decides whether an authenticated caller may reach the admin
// managers. It fails closed: a missing profile, a non-admin role, or a
// lookup error all deny.
type adminGate struct {
	roles     roleLookup
	responder Responder
	logger    zerolog.Logger
}

func newAdminGate(roles roleLookup) adminGate {
	logger := log.With().Str("handlerName", "adminGate").Logger()
	return adminGate{
		roles:     roles,
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// authorize runs the role lookup for userID. The decision is never granted
// on error.
func (g adminGate) authorize(userID uuid.UUID) gateDecision {
	profile, err := g.roles.FindByID(userID)
	if err != nil {
		g.logger.Error().Err(err).Str("userId", userID.String()).Msg("Role lookup failed, denying access")
		return decisionDenied
	}
	if profile == nil {
		g.logger.Warn().Str("userId", userID.String()).Msg("No profile for caller, denying access")
		return decisionDenied
	}
	if !profile.IsAdmin() {
		return decisionDenied
	}
	return decisionGranted
}

// requireAdmin guards the admin routes behind the gate.
func (g adminGate) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			g.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		if g.authorize(userID) != decisionGranted {
			g.responder.WriteError(w, errs.NewInsufficientRoleError(models.RoleAdmin))
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
