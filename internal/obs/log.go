// Package obs holds the logging and metrics plumbing shared by every
// arenakit package. Logging never runs on the alloc/get/set hot path;
// ArenaMetrics.Observe does, since arena.Arena calls it on every Alloc.
package obs

import "go.uber.org/zap"

var base *zap.Logger

// SetLogger installs the *zap.Logger used by every arenakit component.
// Until called, components log nowhere: a library embedded in a
// real-time audio callback must not force output onto an unconfigured
// process.
func SetLogger(l *zap.Logger) {
	base = l
}

// Component returns a child logger tagged with the given component
// name, or a no-op logger if SetLogger has not been called.
func Component(name string) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.With(zap.String("component", name))
}

// ContractViolation is the panic value raised by Abort. Its presence on
// a recovered panic identifies a fatal condition (generation exhaustion,
// a broken capability implementation) rather than an ordinary Go panic.
type ContractViolation struct {
	Component string
	Reason    string
}

func (c ContractViolation) Error() string {
	return c.Component + ": " + c.Reason
}

// Abort logs the violation at error level and panics with a
// ContractViolation. Callers of arenakit must not recover from this:
// it signals that an invariant has already been broken and arena state
// is no longer trustworthy.
func Abort(component, reason string, fields ...zap.Field) {
	Component(component).Error(reason, fields...)
	panic(ContractViolation{Component: component, Reason: reason})
}

// RequireSucceeded aborts component if ok is false. It is used wherever
// an operation cannot fail given the caller already holds proof it must
// succeed (the post-alloc write guarantee of a bump region, the
// post-inner-alloc write of a typed façade's Alloc), so a false here can
// only mean the underlying capability broke its own contract.
func RequireSucceeded(ok bool, component, reason string) {
	if !ok {
		Abort(component, reason)
	}
}
