package ports

import (
	"context"
	"time"
)

// LoginEvent records a successful authentication.
type LoginEvent struct {
	Email string
	At    time.Time
}

// LoginAuditSink accepts login events for asynchronous recording. Sinks must
// not block the login path.
type LoginAuditSink interface {
	Record(event LoginEvent)
}

// LoginRecorder persists the last-login mark for an administrator.
type LoginRecorder interface {
	MarkLogin(ctx context.Context, email string, at time.Time) error
}
