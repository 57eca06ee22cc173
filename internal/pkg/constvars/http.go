package constvars

const (
	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest            = 400
	StatusNotFound              = 404
	StatusRequestEntityTooLarge = 413

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
)
