package checked

import (
	"fmt"
	"sync/atomic"
)

var useBeforeSetChecks atomic.Bool

func init() {
	useBeforeSetChecks.Store(defaultUseBeforeSetChecks)
}

// UseBeforeSetChecks reports whether reads of unset scalars are flagged.
func UseBeforeSetChecks() bool {
	return useBeforeSetChecks.Load()
}

// SetUseBeforeSetChecks switches use-before-set detection on or off and
// returns the previous setting.
//
// With checks off, reading an unset scalar yields its zero value. Correctness
// in this mode is the caller's responsibility.
func SetUseBeforeSetChecks(on bool) (previous bool) {
	previous = useBeforeSetChecks.Swap(on)
	if previous != on {
		tracer().Infof("use-before-set checks switched to %v", on)
	}
	return previous
}

func requireSet(set bool, what string) error {
	if set || !useBeforeSetChecks.Load() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUseBeforeSet, what)
}

func requireBoth(a, b bool, what string) error {
	if err := requireSet(a, what); err != nil {
		return err
	}
	return requireSet(b, what+" (operand)")
}
