package response

import (
	"encoding/json"
	"net/http"

	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/shared/logger"
)

// Message is the body of every error response.
type Message struct {
	Message string `json:"message"`
}

// Created is the body returned when a resource is created.
type Created struct {
	ID string `json:"id"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends the payload as the response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithCreated sends 201 with the identifier of the new resource
func WithCreated(writer http.ResponseWriter, id string) {
	response(writer, http.StatusCreated, Created{ID: id})
}

// WithError sends {"message": ...} with the status carried by the failure, 500 otherwise
func WithError(writer http.ResponseWriter, err error) {
	fail := failure.Normalize(err)
	if fail == nil {
		fail = &failure.Failure{Code: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
	}

	WithMessage(writer, fail.Code, fail.Message)
}

// WithNotFound sends 404 with message
func WithNotFound(writer http.ResponseWriter, message string) {
	WithMessage(writer, http.StatusNotFound, message)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
