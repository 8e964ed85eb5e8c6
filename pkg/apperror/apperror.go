package apperror

import "clinic-records-api/pkg/messages"

// Kind classifies a client-visible failure.
type Kind int

const (
	Validation Kind = iota + 1
	Conflict
	NotFound
	ReferentialIntegrity
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	case NotFound:
		return "not_found"
	case ReferentialIntegrity:
		return "referential_integrity"
	default:
		return "unknown"
	}
}

// Error is a client-visible failure. Key selects the message shown to the
// caller from the message catalog.
type Error struct {
	Kind Kind
	Key  messages.Key
}

func New(kind Kind, key messages.Key) *Error {
	return &Error{Kind: kind, Key: key}
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + string(e.Key)
}
