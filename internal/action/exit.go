package action

import (
	"errors"

	"github.com/notebus/notebus/internal/backend"
	"github.com/notebus/notebus/internal/config"
	"github.com/notebus/notebus/internal/note"
)

// Exit statuses. Codes between 100 and 199 are fatal errors that abort
// before or during dispatch; codes between 200 and 254 are action-level
// errors. Interruption uses the conventional 128+SIGINT.
const (
	ExitOK                 = 0
	ExitFailure            = 1
	ExitUnknownAction      = 100
	ExitBadConfig          = 101
	ExitConnectionFailed   = 102
	ExitInterrupted        = 130
	ExitTooFewArguments    = 200
	ExitNoteNotFound       = 201
	ExitAutodetectFailed   = 202
	ExitModificationFailed = 203
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		unknown     *UnknownActionError
		unavailable *backend.UnavailableError
		connection  *backend.ConnectionError
		loadErr     *config.LoadError
		notFound    *note.NotFoundError
		batch       *BatchError
	)

	switch {
	case errors.As(err, &unknown):
		return ExitUnknownAction
	case errors.As(err, &loadErr):
		return ExitBadConfig
	case errors.Is(err, backend.ErrNoBackend), errors.Is(err, backend.ErrAmbiguousBackend):
		return ExitAutodetectFailed
	case errors.As(err, &unavailable), errors.As(err, &connection):
		return ExitConnectionFailed
	case errors.Is(err, ErrInterrupted):
		return ExitInterrupted
	case errors.Is(err, ErrTooFewArguments):
		return ExitTooFewArguments
	case errors.As(err, &batch):
		return ExitModificationFailed
	case errors.As(err, &notFound):
		return ExitNoteNotFound
	default:
		return ExitFailure
	}
}
