package auth

import (
	"context"
)

type contextKey string

var userClaimsKey contextKey = "user_claims"
var requestIDKey contextKey = "request_id"

func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaims(ctx context.Context) UserClaims {
	val := ctx.Value(userClaimsKey)
	if claims, ok := val.(UserClaims); ok {
		return claims
	}
	return nil
}

// SetRequestID stores the request id for log correlation.
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// CallerID returns the authenticated user id, or "" when there is none.
func CallerID(ctx context.Context) string {
	if claims := GetUserClaims(ctx); claims != nil {
		return claims.UserID()
	}
	return ""
}
