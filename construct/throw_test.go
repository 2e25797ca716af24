package construct

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleConstructionPanicRecover(t *testing.T) {
	testFn := func(throw func(), shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleConstructionPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if throw != nil {
			throw()
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(func() { fatalf("circle %d is gone", 3) }, false)
		assert.EqualError(t, err, "circle 3 is gone")
	})

	t.Run("with wrapped sentinel", func(t *testing.T) {
		err := testFn(func() { fatalWrapf(ErrNoIntersection, "K") }, false)
		assert.EqualError(t, err, "K: no intersection")
		assert.Equal(t, ErrNoIntersection, errors.Cause(err))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(nil, true)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(func() {
				var points []Point
				_ = points[1]
			}, false)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(nil, false)
		assert.NoError(t, err)
	})
}
