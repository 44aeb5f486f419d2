package mcpserver

import (
	"context"
	"os"
	"time"

	"enigma/internal/logging"
)

// watchInterval is how often the parent PID is re-checked.
var watchInterval = 2 * time.Second

// WatchParent polls for parent process death in a background goroutine and
// calls cancel when the parent PID changes, so a server whose client
// disconnected does not linger. It never reads stdin: the MCP stdio
// transport owns it exclusively.
func WatchParent(ctx context.Context, cancel context.CancelFunc) {
	ppid := os.Getppid()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(watchInterval):
				if os.Getppid() != ppid {
					logging.New("mcp").Warn("parent process died, shutting down", "was_pid", ppid)
					cancel()
					return
				}
			}
		}
	}()
}
