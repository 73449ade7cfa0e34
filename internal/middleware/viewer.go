package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// ViewerHeader carries the userId of the member looking at a trip.
const ViewerHeader = "X-Viewer-ID"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// ViewerIDKey is the context key for storing the viewer's userId.
const ViewerIDKey contextKey = "viewer_id"

// GetViewerID extracts the viewer's userId from the context.
// Returns empty string if not found.
func GetViewerID(ctx context.Context) string {
	viewerID, _ := ctx.Value(ViewerIDKey).(string)
	return viewerID
}

// WithViewerID returns a copy of ctx carrying viewerID.
func WithViewerID(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, ViewerIDKey, viewerID)
}

// ViewerInterceptor copies the X-Viewer-ID request header into the context.
// The header is trusted as sent: it only selects whose balance is
// highlighted in a summary and grants no access.
func ViewerInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if viewerID := strings.TrimSpace(req.Header().Get(ViewerHeader)); viewerID != "" {
				ctx = WithViewerID(ctx, viewerID)
			}
			return next(ctx, req)
		}
	}
}
