package requestdata

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

var requestDataKey contextKey

// RequestData carries the authenticated principal through the request
// context. UserType is "staff" or "student"; DepartmentID and
// UniversityID come from the token claims and may be nil for staff
// without a department.
type RequestData struct {
	UserID       uuid.UUID
	UserType     string
	Role         string
	DepartmentID *uuid.UUID
	UniversityID *uuid.UUID
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}
