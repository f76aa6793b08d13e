// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer.
//
// Provides concurrent-safe state handling primitives:
//   - Counter registry with atomic snapshot reads
//   - Named debug probes with on-demand state dumps
//
// Used by the executor to export its counters and by example programs
// to expose mock state for inspection.
package control
