// Package context stores request scoped values on a context.Context
package context

import "context"

type ContextKey string

var (
	RequestIDKey  = ContextKey("X-Request-Id")
	MethodKey     = ContextKey("X-Method")
	RouteKey      = ContextKey("X-Route")
	RemoteIPKey   = ContextKey("X-Remote-Ip")
	UserIDKey     = ContextKey("X-User-Id")
	SnapshotIDKey = ContextKey("X-Snapshot-Id")
)

func set(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func get(ctx context.Context, key ContextKey) string {
	value, ok := ctx.Value(key).(string)
	if !ok {
		return ""
	}
	return value
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return set(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	return get(ctx, RequestIDKey)
}

func SetMethod(ctx context.Context, method string) context.Context {
	return set(ctx, MethodKey, method)
}

func GetMethod(ctx context.Context) string {
	return get(ctx, MethodKey)
}

func SetRoute(ctx context.Context, route string) context.Context {
	return set(ctx, RouteKey, route)
}

func GetRoute(ctx context.Context) string {
	return get(ctx, RouteKey)
}

func SetRemoteIP(ctx context.Context, remoteIP string) context.Context {
	return set(ctx, RemoteIPKey, remoteIP)
}

func GetRemoteIP(ctx context.Context) string {
	return get(ctx, RemoteIPKey)
}

// SetUserID records whose credit report is being reconciled
func SetUserID(ctx context.Context, userID string) context.Context {
	return set(ctx, UserIDKey, userID)
}

func GetUserID(ctx context.Context) string {
	return get(ctx, UserIDKey)
}

// SetSnapshotID records which bureau snapshot a message came from
func SetSnapshotID(ctx context.Context, snapshotID string) context.Context {
	return set(ctx, SnapshotIDKey, snapshotID)
}

func GetSnapshotID(ctx context.Context) string {
	return get(ctx, SnapshotIDKey)
}

// Fields returns the populated values as log fields
func Fields(ctx context.Context) map[string]any {
	fields := make(map[string]any)
	for name, key := range map[string]ContextKey{
		"request_id":  RequestIDKey,
		"user_id":     UserIDKey,
		"snapshot_id": SnapshotIDKey,
	} {
		if v := get(ctx, key); v != "" {
			fields[name] = v
		}
	}
	return fields
}
