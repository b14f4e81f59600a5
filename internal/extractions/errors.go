package extractions

import "errors"

var (
	// ErrNoFile means the multipart request carried no file part.
	ErrNoFile = errors.New("no file provided")
	// ErrEmptyFilename means the file part had an empty name.
	ErrEmptyFilename = errors.New("empty file name")
	// ErrUnsupportedType means the file extension is not allowlisted.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrTooLarge means the upload exceeds the configured size limit.
	ErrTooLarge = errors.New("file too large")
	// ErrNotFound means no extraction exists with the requested id.
	ErrNotFound = errors.New("extraction not found")
)
