package http

import (
	"errors"
	"net/http"

	"github.com/mshakirov/go-journal-keeper/internal/service"
	"github.com/mshakirov/go-journal-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrWeakPassword:          http.StatusUnprocessableEntity,
	service.ErrValidation:            http.StatusUnprocessableEntity,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrCredentialAlreadyExists: http.StatusConflict,
	store.ErrCredentialNotFound:      http.StatusNotFound,
	store.ErrEntryNotFound:           http.StatusNotFound,
	store.ErrVersionNotFound:         http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
