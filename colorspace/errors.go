package colorspace

import "fmt"

// InvalidInputError reports a malformed, non-finite or out-of-range value.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: %s=%g %s", e.Field, e.Value, e.Reason)
}

// UnsupportedConversionError is returned by Converter.Convert when no path is
// registered between two spaces.
type UnsupportedConversionError struct {
	From, To Space
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("unsupported conversion from %s to %s", e.From, e.To)
}
