package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type keyType string

const (
	userIDKey    keyType = "userID"
	userEmailKey keyType = "userEmail"
)

// ctxWithIdentity adds the authenticated caller's identity to the context
func ctxWithIdentity(ctx context.Context, userID uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userEmailKey, email)
}

// ctxGetUserID retrieves the authenticated user ID from the context
func ctxGetUserID(ctx context.Context) (uuid.UUID, error) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is not a uuid")
	}
	return userID, nil
}

// ctxGetUserEmail retrieves the authenticated user email from the context
func ctxGetUserEmail(ctx context.Context) string {
	if value, ok := ctx.Value(userEmailKey).(string); ok {
		return value
	}
	return ""
}
