package process

// Notes:
// - KillTree: only non-existent and non-positive PIDs are used. Killing a
//   real tree is covered by the browser-backed report tests.
// These are acceptable gaps: we test observable behavior, not syscall internals.

import "testing"

func TestKillTree(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{0, -1, 999999999} {
		if err := KillTree(pid); err == nil {
			t.Errorf("KillTree(%d) = nil, want error", pid)
		}
	}
}
