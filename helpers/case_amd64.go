//go:build amd64

package helpers

import "golang.org/x/sys/cpu"

// The wide path wants cheap unaligned 64-bit loads and stores for the
// packed lanes; gate it on the SSE2 probe and keep the scalar loop as
// the fallback on anything older.
var useWideFold = cpu.X86.HasSSE2
