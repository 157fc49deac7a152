package http

import (
	"errors"
	"net/http"

	"github.com/akarpov/go-social-auth/internal/provider"
	"github.com/akarpov/go-social-auth/internal/service"
	"github.com/akarpov/go-social-auth/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenRevoked:            http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	provider.ErrUnsupportedProvider: http.StatusBadRequest,
	provider.ErrValidationFailed:    http.StatusUnauthorized,
	provider.ErrProviderUnavailable: http.StatusBadGateway,

	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrUserNotSaved:        http.StatusInternalServerError,
	store.ErrTokenRecordNotFound: http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
