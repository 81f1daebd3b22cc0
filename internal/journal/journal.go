// Package journal provides append-only record sinks. Records are only
// ever added, one self-describing entry at a time, and never read back
// by the service.
package journal

import "context"

type Appender interface {
	Append(ctx context.Context, record any) error
	Ping(ctx context.Context) error
}

// Nop discards every record. Used when a sink is disabled.
type Nop struct{}

func (Nop) Append(ctx context.Context, record any) error { return nil }
func (Nop) Ping(ctx context.Context) error               { return nil }
