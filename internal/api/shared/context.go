package shared

// contextKey is a private type for context keys defined in this package,
// preventing collisions with keys from other packages.
type contextKey string

// UserIDContextKey is the context key under which the authenticated
// user's id (int64) is stored by the auth middleware.
const UserIDContextKey = contextKey("user_id")
