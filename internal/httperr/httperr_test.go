package httperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMap_FailureKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid argument", status.Error(codes.InvalidArgument, "bad book id"), http.StatusBadRequest, MsgInvalidRequest},
		{"not found", status.Error(codes.NotFound, "loan 99 not found"), http.StatusNotFound, MsgNotFound},
		{"already exists passes remote message", status.Error(codes.AlreadyExists, "email already registered"), http.StatusConflict, "email already registered"},
		{"already exists empty message", status.Error(codes.AlreadyExists, ""), http.StatusConflict, MsgAlreadyExists},
		{"failed precondition passes remote message", status.Error(codes.FailedPrecondition, "member has active loans"), http.StatusConflict, "member has active loans"},
		{"failed precondition empty message", status.Error(codes.FailedPrecondition, ""), http.StatusConflict, MsgNotAllowed},
		{"unauthenticated", status.Error(codes.Unauthenticated, "no token"), http.StatusUnauthorized, MsgUnauthenticated},
		{"permission denied", status.Error(codes.PermissionDenied, "nope"), http.StatusForbidden, MsgForbidden},
		{"internal", status.Error(codes.Internal, "db down"), http.StatusInternalServerError, MsgInternal},
		{"unavailable", status.Error(codes.Unavailable, "conn refused"), http.StatusInternalServerError, MsgInternal},
		{"deadline exceeded", status.Error(codes.DeadlineExceeded, "too slow"), http.StatusInternalServerError, MsgInternal},
		{"plain error", errors.New("something broke"), http.StatusInternalServerError, MsgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStatus, gotMsg := Map(tt.err)
			assert.Equal(t, tt.wantStatus, gotStatus)
			assert.Equal(t, tt.wantMsg, gotMsg)
		})
	}
}

// Map must be total: every failure kind resolves to a status, and internal
// detail never leaks for the kinds with fixed public messages.
func TestMap_TotalOverAllCodes(t *testing.T) {
	for c := codes.OK; c <= codes.Unauthenticated; c++ {
		st, msg := Map(status.Error(c, "internal detail: host=10.0.0.5"))
		assert.NotZero(t, st, "code %v must map to a status", c)
		assert.NotEmpty(t, msg, "code %v must map to a message", c)
		switch c {
		case codes.AlreadyExists, codes.FailedPrecondition:
			// These two surface the remote message by design.
		default:
			assert.NotContains(t, msg, "10.0.0.5", "code %v must not leak detail", c)
		}
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, codes.NotFound, Kind(status.Error(codes.NotFound, "x")))
	assert.Equal(t, codes.Unknown, Kind(errors.New("plain")))
}
