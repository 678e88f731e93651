package errcode

// Code is a stable error identifier for the pin registry.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Registry lookups
	UnknownPin  Code = "unknown_pin"
	UnknownBank Code = "unknown_bank"
	UnknownChip Code = "unknown_chip"

	// Function matrix
	UnsupportedBinding Code = "unsupported_binding"

	// Bank bulk operations
	InvalidMaskBits Code = "invalid_mask_bits"

	// Capability violations (e.g. output handle on an input-only pin)
	Unsupported Code = "unsupported"

	// Build-time description validation
	BadTable Code = "bad_table"

	Error Code = "error" // generic fallback
)

// E carries a code plus context and an optional cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}

// Unwrap exposes the cause when present, otherwise the bare Code,
// so errors.Is(err, errcode.UnknownPin) works through the wrapper.
func (e *E) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.C
}
func (e *E) Code() Code { return e.C }

// New builds a wrapped code with context.
func New(c Code, op, msg string) error {
	return &E{C: c, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
