package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeySession   CtxKey = "Session"
	KeyRequestID CtxKey = "RequestID"
)
