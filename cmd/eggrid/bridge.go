package main

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eggrid/eggrid/pkg/termgrid"
)

// startBridge launches the notification watcher goroutine. It only calls
// p.Send() and never touches model state directly. Returns a cancel
// function that stops the watcher and waits for it to exit, ensuring no
// stale messages are sent after return.
func startBridge(ctx context.Context, p *tea.Program, bus *termgrid.Bus) context.CancelFunc {
	bridgeCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	sub := bus.Subscribe(64)

	// Notification watcher: converts bus notifications to bubbletea messages.
	wg.Go(func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-bridgeCtx.Done():
				return
			case note, ok := <-sub.C:
				if !ok {
					return
				}
				p.Send(notificationMsg{note: note})
			}
		}
	})

	return func() {
		cancel()
		wg.Wait()
	}
}
