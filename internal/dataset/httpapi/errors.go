package httpapi

import (
	"errors"
	"net/http"

	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/infra/httpserver"
)

// replyWithServiceError maps the dataset error kinds to a status code. Unclassified errors
// are answered with fallbackMsg when one is given.
func replyWithServiceError(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUpstream):
		httpserver.ReplyWithError(w, http.StatusBadGateway, err.Error())
	case fallbackMsg != "":
		httpserver.ReplyWithError(w, http.StatusInternalServerError, fallbackMsg)
	default:
		httpserver.ReplyWithError(w, http.StatusInternalServerError, err.Error())
	}
}
