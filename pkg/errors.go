package pkg

// AppError is the error envelope handlers translate domain failures into.
//
// Code is a stable machine-readable identifier; HTTPStatus is the status the
// boundary layer responds with. Err carries the wrapped cause for logging and
// is never serialized to clients.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError builds an AppError wrapping an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body rendered for a failed request.
type HTTPError struct {
	Estatus bool   `json:"estatus"`
	Code    string `json:"code"`
	Mensaje string `json:"mensaje"`
}

// ToHTTPError converts the AppError into its response body. The wrapped cause
// is intentionally dropped.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Estatus: false, Code: e.Code, Mensaje: e.Message}
}
