package admin

import "time"

// NoticeKind distinguishes success and error feedback.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient message shown to the editor after an operation.
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// NewNotice returns a notice that expires ttl after now.
func NewNotice(kind NoticeKind, message string, now time.Time, ttl time.Duration) Notice {
	return Notice{Kind: kind, Message: message, ExpiresAt: now.Add(ttl)}
}

// Active reports whether the notice is still visible at now.
func (n Notice) Active(now time.Time) bool {
	return n.Message != "" && now.Before(n.ExpiresAt)
}
