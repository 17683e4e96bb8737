package pkg

// AppError is the application-level error surfaced by HTTP handlers.
//
// Code is a stable machine-readable identifier; Message is safe to show to
// the dashboard user; Err keeps the underlying cause for logging.
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

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body rendered for failed requests. It follows the
// `{success, message, error}` envelope the dashboard expects.
type HTTPError struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Error   HTTPErrorBody `json:"error"`
}

type HTTPErrorBody struct {
	Code string `json:"code"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success: false,
		Message: e.Message,
		Error:   HTTPErrorBody{Code: e.Code},
	}
}
