package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
	"github.com/anwarkhairul/Usaha-Bersama/store"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// Shared dependencies, set from main before the router starts.
var (
	// Store is the in-memory database used by all handlers.
	Store *store.Store
	// Queue mirrors mutations to the durable store.
	Queue *outbox.Outbox
	// JWTSecret signs and verifies access tokens.
	JWTSecret []byte
	// AdminEmail and AdminPassword identify the built-in administrator.
	AdminEmail    string
	AdminPassword string
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

type contextKey string

const (
	ctxMemberID contextKey = "memberID"
	ctxRole     contextKey = "role"
)

// Auth is middleware that enforces a Bearer JWT issued by Login.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing or invalid Authorization header")
			return
		}
		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return JWTSecret, nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid claims")
			return
		}
		memberID, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		ctx := context.WithValue(r.Context(), ctxMemberID, memberID)
		ctx = context.WithValue(ctx, ctxRole, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is middleware for routes reserved to the administrator.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if callerRole(r) != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func callerID(r *http.Request) string {
	id, _ := r.Context().Value(ctxMemberID).(string)
	return id
}

func callerRole(r *http.Request) string {
	role, _ := r.Context().Value(ctxRole).(string)
	return role
}

func isAdmin(r *http.Request) bool {
	return callerRole(r) == models.RoleAdmin
}

// today returns the calendar date used on records created now.
func today() string {
	return time.Now().Format("2006-01-02")
}
