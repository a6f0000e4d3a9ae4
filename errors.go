package fusemap

import "fmt"

// MalformedError reports input that is not valid JSON at all. Decoding is
// deterministic, so retrying with the same bytes cannot help; the caller
// should surface it as a failed load.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("fusemap: malformed map JSON: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// SchemaError reports structurally valid JSON that is missing a required
// field or carries the wrong scalar kind. Path is indexed down to the
// offending layer and tile, e.g. "layers[2].tiles[5].y".
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("fusemap: invalid map: %s: %s", e.Path, e.Reason)
}
