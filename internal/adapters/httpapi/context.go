package httpapi

import "context"

type subjectKey struct{}

// WithSubject stores the verified token subject (the caller's email) in ctx.
func WithSubject(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, subjectKey{}, email)
}

// SubjectFromContext returns the verified subject email set by the auth
// middleware.
func SubjectFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(subjectKey{}).(string)
	return v, ok && v != ""
}
