package http

import (
	"errors"
	"net/http"

	"github.com/mpetrenko/authd/internal/service"
	"github.com/mpetrenko/authd/internal/store"
	"github.com/mpetrenko/authd/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrTwoFAChallengeFailed: http.StatusUnauthorized,
	service.ErrTokenIsInvalid:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:       http.StatusUnauthorized,
	service.ErrTokenIsBanned:        http.StatusUnauthorized,

	models.ErrInvalidEmail:          http.StatusBadRequest,
	models.ErrPasswordTooShort:      http.StatusBadRequest,
	models.ErrInvalidLoginAttemptID: http.StatusBadRequest,
	models.ErrInvalidTwoFACode:      http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
