package domain

const (
	ErrSendingReplyFailed = "failed to send reply"
	ErrEmptyPayload       = "empty payload"
)
