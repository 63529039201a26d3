package infra

import (
	"log/slog"

	"autoparts-pos/internal/pkg/errs"
)

// ErrorKind tells callers what went wrong in a catalog adapter without
// exposing the driver or transport error.
type ErrorKind string

const (
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindDBFailure           ErrorKind = "DB_FAILURE"
	KindDuplicateKey        ErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated  ErrorKind = "FOREIGN_KEY_VIOLATED"
	KindUpstreamUnavailable ErrorKind = "UPSTREAM_UNAVAILABLE"
	KindUpstreamRejected    ErrorKind = "UPSTREAM_REJECTED"
)

// mark is the errs sentinel the use case layer reads for each kind.
func (k ErrorKind) mark() error {
	switch k {
	case KindUpstreamUnavailable:
		return errs.ErrCatalogUnavailable
	case KindUpstreamRejected:
		return errs.ErrCatalogRejected
	default:
		return errs.ErrDatabaseOperationFailed
	}
}

func (k ErrorKind) upstream() bool {
	return k == KindUpstreamUnavailable || k == KindUpstreamRejected
}

type AdapterError struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e AdapterError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e AdapterError) Unwrap() error {
	return e.err
}

// WrapAdapterErr logs the failure and returns an AdapterError marked with the
// sentinel for its kind. Upstream failures are a per-call condition and log at
// warn; storage failures log at error.
func WrapAdapterErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
		err = errs.Wrap(err, msg)
	}

	if kind.upstream() {
		slogger.Warn("Catalog error: "+msg, logArgs...)
	} else {
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	return errs.Mark(AdapterError{Kind: kind, msg: msg, err: err}, kind.mark())
}
