package httpadapter

import (
	"net/http"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput),
		domain.IsKind(err, domain.ErrUnsupportedFileType),
		domain.IsKind(err, domain.ErrEmptyOrUnreadable):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrCorruptedSource):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case domain.IsKind(err, domain.ErrAccessDenied):
		return http.StatusForbidden
	case domain.IsKind(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
