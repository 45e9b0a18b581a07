package infra

import (
	"errors"
	"log/slog"

	"hotel-guest-manager/internal/pkg/errs"
)

type PersistenceErrorKind string

type PersistenceError struct {
	Kind PersistenceErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e PersistenceError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e PersistenceError) Unwrap() error {
	return e.err
}

func WrapPersistenceErr(slogger *slog.Logger, kind PersistenceErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Persistence error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return PersistenceError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind PersistenceErrorKind) bool {
	var e PersistenceError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Serializer failure kinds
const (
	KindIO     PersistenceErrorKind = "IO_FAILURE"
	KindEncode PersistenceErrorKind = "ENCODE_FAILURE"
	KindDecode PersistenceErrorKind = "DECODE_FAILURE"
)
