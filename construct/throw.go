package construct

import "github.com/pkg/errors"

// Threading errors through every construction step would bury the geometry in
// error plumbing. Instead, steps panic with a ConstructionError, and the public
// API recovers to convert to an error.

type ConstructionError struct {
	err error
}

func (e ConstructionError) Error() string {
	return e.err.Error()
}

// Lets errors.Cause see through to the sentinel.
func (e ConstructionError) Cause() error {
	return e.err
}

func (e ConstructionError) Unwrap() error {
	return e.err
}

// Panic with a ConstructionError.
func fatalf(format string, args ...interface{}) {
	panic(ConstructionError{errors.Errorf(format, args...)})
}

// Panic with a ConstructionError wrapping one of the sentinel errors.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(ConstructionError{errors.Wrapf(err, format, args...)})
}

// Convert a recovered ConstructionError into an error. Any other panic is a
// real bug and is re-raised.
func HandleConstructionPanicRecover(r interface{}) error {
	if r != nil {
		if constructionError, ok := r.(ConstructionError); ok {
			return constructionError
		}
		panic(r)
	}
	return nil
}
