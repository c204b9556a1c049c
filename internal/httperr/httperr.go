// Package httperr maps remote failure kinds onto public HTTP responses.
// The mapping is total and deterministic: every possible failure resolves
// to exactly one (status, message) pair, and internal transport detail
// never reaches a caller.
package httperr

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Public messages. Only AlreadyExists and FailedPrecondition surface the
// remote service's own message, since those carry business context the
// caller can act on (e.g. "member has active loans").
const (
	MsgInvalidRequest  = "Invalid request"
	MsgNotFound        = "Resource not found"
	MsgAlreadyExists   = "Already exists"
	MsgNotAllowed      = "Operation not allowed"
	MsgUnauthenticated = "Authentication required"
	MsgForbidden       = "Permission denied"
	MsgInternal        = "Internal server error"
)

// Map resolves a remote-call failure into its public HTTP status and
// message. Errors that carry no recognized failure kind (including plain
// transport errors) map to 500.
func Map(err error) (int, string) {
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, MsgInvalidRequest
	case codes.NotFound:
		return http.StatusNotFound, MsgNotFound
	case codes.AlreadyExists:
		return http.StatusConflict, orDefault(st.Message(), MsgAlreadyExists)
	case codes.FailedPrecondition:
		return http.StatusConflict, orDefault(st.Message(), MsgNotAllowed)
	case codes.Unauthenticated:
		return http.StatusUnauthorized, MsgUnauthenticated
	case codes.PermissionDenied:
		return http.StatusForbidden, MsgForbidden
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

// Kind returns the failure kind of err for logging.
func Kind(err error) codes.Code {
	return status.Code(err)
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
