package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the binding layer the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // native library loading
	PhaseAcquire  Phase = "acquire"  // handle acquisition
	PhaseCall     Phase = "call"     // native entry point invocation
	PhaseLifetime Phase = "lifetime" // handle lifetime management
	PhaseConvert  Phase = "convert"  // Go <-> C value conversion
)

// Kind categorizes the error
type Kind string

const (
	KindNilPointer     Kind = "nil_pointer"
	KindLibraryMissing Kind = "library_missing"
	KindSymbolMissing  Kind = "symbol_missing"
	KindClosed         Kind = "closed"
	KindBorrowed       Kind = "borrowed"
	KindNativeStatus   Kind = "native_status"
	KindInvalidInput   Kind = "invalid_input"
	KindNotFound       Kind = "not_found"
	KindUnsupported    Kind = "unsupported"
	KindOverflow       Kind = "overflow"
)

// Error is the structured error type used throughout the bindings
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Object string
	Entry  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Object != "" {
		b.WriteString(" on ")
		b.WriteString(e.Object)
	}

	if e.Entry != "" {
		b.WriteString(" in ")
		b.WriteString(e.Entry)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Object sets the wrapped object type name
func (b *Builder) Object(name string) *Builder {
	b.err.Object = name
	return b
}

// Entry sets the native entry point name
func (b *Builder) Entry(name string) *Builder {
	b.err.Entry = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NilPointer reports a nil native pointer where a live object was required
func NilPointer(phase Phase, object string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Object: object,
		Detail: "native pointer is nil",
	}
}

// Closed reports use of a handle after it was released
func Closed(object string) *Error {
	return &Error{
		Phase:  PhaseLifetime,
		Kind:   KindClosed,
		Object: object,
		Detail: "handle already closed",
	}
}

// LibraryMissing reports a native library that could not be loaded
func LibraryMissing(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindLibraryMissing,
		Detail: fmt.Sprintf("cannot load %q", name),
		Cause:  cause,
	}
}

// SymbolMissing reports an entry point absent from a loaded library
func SymbolMissing(library, symbol string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindSymbolMissing,
		Entry:  symbol,
		Detail: fmt.Sprintf("symbol not exported by %s", library),
	}
}

// NotLoaded reports a call into a library that was never loaded
func NotLoaded(library string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindLibraryMissing,
		Detail: fmt.Sprintf("%s not loaded; call ffi.Load first", library),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
