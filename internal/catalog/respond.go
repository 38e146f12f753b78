package catalog

import (
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nieomylnieja/jsonview/pkg/jsonview"
)

const contentTypeJSON = "application/json; charset=utf-8"

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// respond renders the serialization fully before writing any headers,
// so that a failed serialization can still be reported as an error response.
func respond(w http.ResponseWriter, logger *zap.Logger, status int, s jsonview.Serialization) {
	data, err := s.WithLogger(logger).Marshal()
	if err != nil {
		var invalid *jsonview.InvalidSerializationError
		if errors.As(err, &invalid) {
			respondError(w, logger, http.StatusBadRequest, err)
		} else {
			respondError(w, logger, http.StatusInternalServerError, err)
		}
		return
	}
	write(w, logger, status, data)
}

func respondError(w http.ResponseWriter, logger *zap.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}
	data, marshalErr := jsonview.FromAs(errorResponse{Status: status, Message: err.Error()}, "error").Marshal()
	if marshalErr != nil {
		logger.Error("failed to render error response", zap.Error(marshalErr))
		http.Error(w, http.StatusText(status), status)
		return
	}
	write(w, logger, status, data)
}

func write(w http.ResponseWriter, logger *zap.Logger, status int, data []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}
