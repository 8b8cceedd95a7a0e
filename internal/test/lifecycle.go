package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder captures fx lifecycle hooks so tests can invoke them
// directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub records graceful shutdown requests.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown signals the Called channel without blocking.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
