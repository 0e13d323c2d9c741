package model

type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorInvalidCharacter
	ErrorInvalidChecksum
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "none"
	case ErrorInvalidCharacter:
		return "invalid_character"
	case ErrorInvalidChecksum:
		return "invalid_checksum"
	default:
		return "unknown"
	}
}

// Message is the user-facing text printed for a failed validation.
func (k ErrorKind) Message() string {
	switch k {
	case ErrorInvalidCharacter:
		return "Invalid character(s) found in ISBN."
	case ErrorInvalidChecksum:
		return "An invalid ISBN checksum was found."
	default:
		return ""
	}
}

// ValidationResult is either a success carrying all five groups or a
// failure carrying only its kind. Build it with Success or Failure; the
// zero value is not a success.
type ValidationResult struct {
	groups GroupSet
	kind   ErrorKind
	ok     bool
}

func Success(groups GroupSet) ValidationResult {
	return ValidationResult{groups: groups, kind: ErrorNone, ok: true}
}

// Failure builds a failed result. kind must not be ErrorNone.
func Failure(kind ErrorKind) ValidationResult {
	return ValidationResult{kind: kind}
}

func (r ValidationResult) OK() bool {
	return r.ok
}

func (r ValidationResult) Kind() ErrorKind {
	return r.kind
}

// Groups returns the decomposed groups; the second value is false for failures.
func (r ValidationResult) Groups() (GroupSet, bool) {
	return r.groups, r.OK()
}
