package resp

import "net/http"

// BadRequest indicates a bad request.
func BadRequest(message string, data ...any) *Exception {
	return newResponse(http.StatusBadRequest, RequestErr, message, data...)
}

// Forbidden indicates access is forbidden.
func Forbidden(message string, data ...any) *Exception {
	return newResponse(http.StatusForbidden, AccessDenied, message, data...)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string, data ...any) *Exception {
	return newResponse(http.StatusNotFound, NothingFound, message, data...)
}

// InternalServer indicates a server error.
func InternalServer(message string, data ...any) *Exception {
	return newResponse(http.StatusInternalServerError, ServerErr, message, data...)
}

// BadGateway indicates an upstream service failure.
func BadGateway(message string, data ...any) *Exception {
	return newResponse(http.StatusBadGateway, GatewayErr, message, data...)
}

// Unavailable indicates the backing store cannot be reached.
func Unavailable(message string, data ...any) *Exception {
	return newResponse(http.StatusServiceUnavailable, ServiceUnavailable, message, data...)
}
