package core

// errors.go defines the outcome taxonomy for a tracking lookup and the
// mapping from internal errors to user-facing messages.
//
// The resolver distinguishes four failure classes:
//   - ValidationError: bad input, recovered locally, never logged as a
//     system error
//   - ErrNotFound: the tracking number is not in the orders sheet — an
//     expected terminal outcome, not a failure
//   - ErrBatchMissing: the order references a batch that does not exist,
//     which indicates inconsistent sheet data
//   - transport errors: sheet fetch failures, wrapped with the dataset name
//
// Web handlers never show internal causes to clients; they call MapError
// and render the UserMessage, logging the technical error with the request
// id for correlation.

import (
	"errors"
	"fmt"
)

// ErrNotFound means the tracking number has no row in the orders sheet.
var ErrNotFound = errors.New("tracking number not found")

// ErrBatchMissing means an order row references a batch id with no matching
// row in the batches sheet. Unlike ErrNotFound this is a data-integrity
// problem: the sheets disagree with each other.
var ErrBatchMissing = errors.New("batch not found for order")

// ValidationError reports rejected user input.
type ValidationError struct {
	Code    string // stable code for MapError
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// errEmptyInput and errBadLength are the two validation outcomes Track can
// produce. Tracking numbers in circulation run 10–20 characters; 3–40 is a
// deliberately loose sanity bound.
func errEmptyInput() error {
	return &ValidationError{Code: "VAL001", Message: "tracking number is empty"}
}

func errBadLength(n int) error {
	return &ValidationError{Code: "VAL002", Message: fmt.Sprintf("tracking number length %d is outside 3-40", n)}
}

// UserMessage is a client-safe rendering of an error: a short message, a
// suggested action, and a stable code users can quote when asking for help.
type UserMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// MapError converts any error from a tracking lookup into a UserMessage.
// Unknown errors fall through to a generic "try again later" message so no
// internal detail ever reaches the client.
func MapError(err error) UserMessage {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return UserMessage{
			Code:    verr.Code,
			Message: "Введите корректный трек-номер",
			Action:  "Трек-номер должен содержать от 3 до 40 символов",
		}
	case errors.Is(err, ErrNotFound):
		return UserMessage{
			Code:    "TRK001",
			Message: "Посылка с таким трек-номером не найдена",
			Action:  "Проверьте номер и попробуйте ещё раз",
		}
	case errors.Is(err, ErrBatchMissing):
		return UserMessage{
			Code:    "DATA001",
			Message: "Партия не найдена",
			Action:  "Обратитесь в поддержку, указав код ошибки",
		}
	case isTransport(err):
		return UserMessage{
			Code:    "NET001",
			Message: "Ошибка загрузки данных. Попробуйте позже.",
			Action:  "Повторите запрос через несколько минут",
		}
	default:
		return UserMessage{
			Code:    "ERR000",
			Message: "Ошибка загрузки данных. Попробуйте позже.",
		}
	}
}

// TransportError wraps a sheet fetch failure so callers can classify it
// without depending on the HTTP layer.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func isTransport(err error) bool {
	var terr *TransportError
	return errors.As(err, &terr)
}
