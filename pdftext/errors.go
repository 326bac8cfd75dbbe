package pdftext

import "fmt"

// NotFoundError is returned when the input path does not reference an
// existing regular file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pdftext: pdf not found: %s", e.Path)
}

// InvalidFormatError is returned when the file extension is not .pdf
// (compared case-insensitively).
type InvalidFormatError struct {
	Path string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("pdftext: expected a .pdf file: %s", e.Path)
}

// EmptyInputError is returned when the file exists but has zero
// length.
type EmptyInputError struct {
	Path string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("pdftext: pdf is empty: %s", e.Path)
}

// ExtractionError is returned when the document cannot be opened or
// parsed (corrupt file, unsupported internals, oversize input).
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("pdftext: extract %s: %v", e.Path, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }
