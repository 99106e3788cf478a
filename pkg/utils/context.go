package utils

import "context"

type contextKey string

const AdminEmailKey contextKey = "admin_email"

// SetAdminContext records the authenticated admin's email on the request
// context.
func SetAdminContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, AdminEmailKey, email)
}

// GetAdminFromContext returns the authenticated admin's email, if any.
func GetAdminFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(AdminEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
