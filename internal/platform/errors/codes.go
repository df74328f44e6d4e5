// Package errors provides structured domain errors shared by the blog services.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Content errors
	CodeNotFound       Code = "NOT_FOUND"
	CodeInvalidQuery   Code = "INVALID_QUERY"
	CodeInvalidFilter  Code = "INVALID_FILTER"
	CodeUnauthorized   Code = "CMS_UNAUTHORIZED"
	CodeCMSUnavailable Code = "CMS_UNAVAILABLE"

	// Preview errors
	CodePreviewDisabled     Code = "PREVIEW_DISABLED"
	CodePreviewTokenInvalid Code = "PREVIEW_TOKEN_INVALID"
	CodePreviewSlugMissing  Code = "PREVIEW_SLUG_MISSING"
	CodePreviewSlugInvalid  Code = "PREVIEW_SLUG_INVALID"

	// Viewer errors
	CodeAssetLoad     Code = "ASSET_LOAD_FAILED"
	CodeSessionClosed Code = "SESSION_CLOSED"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound, CodePreviewDisabled, CodePreviewSlugMissing, CodePreviewSlugInvalid:
		return http.StatusNotFound
	case CodeInvalidQuery, CodeInvalidFilter:
		return http.StatusBadRequest
	case CodeUnauthorized, CodePreviewTokenInvalid:
		return http.StatusUnauthorized
	case CodeCMSUnavailable, CodeAssetLoad:
		return http.StatusBadGateway
	case CodeSessionClosed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
