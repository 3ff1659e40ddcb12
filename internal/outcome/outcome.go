package outcome

// Kind classifies the outcome of a service operation. Handlers branch on the
// kind when choosing an HTTP status code, never on message text.
type Kind int

const (
	KindSuccess Kind = iota
	// KindInvalid marks malformed or missing input, with per-field errors.
	KindInvalid
	// KindNotFound marks a lookup whose id or key matched no row.
	KindNotFound
	// KindConflict marks a duplicate natural key (ISBN, author full name).
	KindConflict
	// KindFailed marks a mutation that affected zero rows.
	KindFailed
)

// Status is the outcome of an operation that returns no payload.
type Status struct {
	Kind    Kind
	Message string
	Errors  []string
}

// Result is the outcome of a data-returning operation.
type Result[T any] struct {
	Status
	Data T
}

func Success(message string) Status {
	return Status{Kind: KindSuccess, Message: message}
}

func Failure(kind Kind, message string) Status {
	return Status{Kind: kind, Message: message}
}

// InvalidInput reports a shape-validation failure with per-field messages.
func InvalidInput(message string, errs []string) Status {
	return Status{Kind: KindInvalid, Message: message, Errors: errs}
}

func SuccessData[T any](message string, data T) Result[T] {
	return Result[T]{Status: Success(message), Data: data}
}

func FailureData[T any](kind Kind, message string) Result[T] {
	return Result[T]{Status: Failure(kind, message)}
}

func (s Status) IsSuccess() bool {
	return s.Kind == KindSuccess
}

// HTTPStatus maps an outcome kind to the response status code. Duplicate keys
// and zero-row mutations are client errors, absent rows are 404.
func (s Status) HTTPStatus() int {
	switch s.Kind {
	case KindSuccess:
		return 200
	case KindNotFound:
		return 404
	default:
		return 400
	}
}
