// Package timeouts defines shared timeout constants used by the commands.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ViewerStartDelay is the pause between the first rendered frame and the
// start of animation playback.
const ViewerStartDelay = 1500 * time.Millisecond

// ViewerRestartDelay is the pause between end of track and the next loop.
const ViewerRestartDelay = 5 * time.Second
