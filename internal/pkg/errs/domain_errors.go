package errs

import "errors"

// Sentinel errors shared by the usecase and console layers
var (
	// Persistence errors
	ErrSaveFailed = errors.New("save guests failed")
	ErrLoadFailed = errors.New("load guests failed")

	// Loaded collection breaks store invariants
	ErrCorruptCollection = errors.New("corrupt guest collection")

	// Text a file format cannot represent without altering it
	ErrUnencodableText = errors.New("text cannot be encoded losslessly")

	// Configuration errors
	ErrUnknownFormat = errors.New("unknown storage format")
)
