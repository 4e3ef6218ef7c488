package userctx

import "context"

// Context key type
type contextKey string

const userIDKey contextKey = "user_id"

// SetUserID adds the host platform user ID to the request context
func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID retrieves the host platform user ID from the request context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(userIDKey); userID != nil {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}
