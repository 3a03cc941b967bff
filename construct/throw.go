package construct

import "github.com/pkg/errors"

// A compound action resolves points, stages a batch, runs the intersection
// engine and only then commits. Threading a "rejected" result back through
// every step would clutter all of the handlers, so a handler that has to give
// up panics with an abort instead, and Controller.Apply recovers it into an
// error. Nothing is committed before the very end of a handler, so an aborted
// action leaves the store exactly as it was.

// ErrRejected is the cause of every error returned for an aborted action.
var ErrRejected = errors.New("action rejected")

type abort struct {
	err error
}

// Abort the current action with an ErrRejected based error.
func fatalf(format string, args ...interface{}) {
	panic(abort{errors.Wrapf(ErrRejected, format, args...)})
}

// Convert a recovered abort into its error. Any other panic is a real bug and
// keeps propagating.
func HandleConstructPanicRecover(r interface{}) error {
	if r != nil {
		if a, ok := r.(abort); ok {
			return a.err
		}
		panic(r)
	}
	return nil
}
