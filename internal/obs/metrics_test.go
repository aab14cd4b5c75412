package obs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmxmxh/arenakit/internal/obs"
)

func TestArenaMetrics_ObserveResetAbortDoNotPanic(t *testing.T) {
	m := obs.NewArenaMetrics("metrics_test_basic")

	assert.NotPanics(t, func() {
		m.Observe(64, 16, 2)
		m.ResetOccurred()
		m.AbortOccurred()
	})
}

// Two ArenaMetrics constructed under the same name must share one set of
// registered collectors rather than erroring on the second
// prometheus.Register call — this is the duplicate-name path
// registerGauge/registerCounter exist to handle.
func TestArenaMetrics_DuplicateNameReusesRegisteredCollectors(t *testing.T) {
	first := obs.NewArenaMetrics("metrics_test_duplicate")
	second := obs.NewArenaMetrics("metrics_test_duplicate")

	assert.NotPanics(t, func() {
		first.Observe(1, 1, 1)
		second.Observe(2, 2, 2)
	})
}

func TestArenaMetrics_NilReceiverIsNoOp(t *testing.T) {
	var m *obs.ArenaMetrics
	assert.NotPanics(t, func() {
		m.Observe(1, 1, 1)
		m.ResetOccurred()
		m.AbortOccurred()
	})
}
