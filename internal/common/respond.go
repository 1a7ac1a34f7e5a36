package common

import (
	"encoding/json"
	"net/http"

	apperrors "ripple/pkg/errors"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	var body errorBody
	body.Error.Code = string(statusToCode(status))
	body.Error.Message = message
	WriteJSON(w, status, body)
}

// WriteError maps a domain error onto an HTTP status plus a machine-readable
// code the UI can branch on.
func WriteError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)

	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = err.Error()
	WriteJSON(w, codeToStatus(code), body)
}

func codeToStatus(code apperrors.Code) int {
	switch code {
	case apperrors.CodeInvalidArgument:
		return http.StatusBadRequest
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeDuplicateRelationship, apperrors.CodeInvalidState, apperrors.CodeAlreadyMember:
		return http.StatusConflict
	case apperrors.CodeNotAMember, apperrors.CodePermissionDenied:
		return http.StatusForbidden
	case apperrors.CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func statusToCode(status int) apperrors.Code {
	switch status {
	case http.StatusUnauthorized:
		return apperrors.CodeUnauthenticated
	case http.StatusBadRequest:
		return apperrors.CodeInvalidArgument
	default:
		return apperrors.CodeUnknown
	}
}
