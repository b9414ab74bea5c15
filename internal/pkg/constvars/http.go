package constvars

import "net/http"

const (
	MIMEApplicationJSON = "application/json"

	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
)

const (
	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusBadRequest          = http.StatusBadRequest
	StatusNotFound            = http.StatusNotFound
	StatusUnauthorized        = http.StatusUnauthorized
	StatusForbidden           = http.StatusForbidden
	StatusGatewayTimeout      = http.StatusGatewayTimeout
	StatusInternalServerError = http.StatusInternalServerError
)
