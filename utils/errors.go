package utils

// DisposedError represents an error indicating that a writer was used after
// its backing region was released.
type DisposedError struct {
}

// Error returns the error message for DisposedError.
func (*DisposedError) Error() string {
	return "buffer disposed"
}

// NegativeCountError represents an error indicating that a negative element
// count was passed to Advance.
type NegativeCountError struct {
}

// Error returns the error message for NegativeCountError.
func (*NegativeCountError) Error() string {
	return "negative count"
}

// NegativeSizeHintError represents an error indicating that a negative size
// hint was passed to Writable.
type NegativeSizeHintError struct {
}

// Error returns the error message for NegativeSizeHintError.
func (*NegativeSizeHintError) Error() string {
	return "negative size hint"
}

// AdvanceTooFarError represents an error indicating that Advance requested
// more elements than the remaining free capacity.
type AdvanceTooFarError struct {
}

// Error returns the error message for AdvanceTooFarError.
func (*AdvanceTooFarError) Error() string {
	return "advanced past free capacity"
}

// UnsupportedElementTypeError represents an error indicating that a byte-only
// operation was requested on a non-byte writer.
type UnsupportedElementTypeError struct {
}

// Error returns the error message for UnsupportedElementTypeError.
func (*UnsupportedElementTypeError) Error() string {
	return "unsupported element type"
}

// NilSinkError represents an error indicating that a nil destination was
// passed to WriteTo.
type NilSinkError struct {
}

// Error returns the error message for NilSinkError.
func (*NilSinkError) Error() string {
	return "nil sink"
}
