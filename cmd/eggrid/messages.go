package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eggrid/eggrid/pkg/termgrid"
)

// notificationMsg delivers an engine notification from the bridge goroutine.
type notificationMsg struct {
	note termgrid.Notification
}

// programReadyMsg passes the *tea.Program to the model so it can start the
// bridge goroutine.
type programReadyMsg struct {
	program *tea.Program
}
