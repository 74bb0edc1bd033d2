package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"planeview/internal/remote"
)

// StatusMsg replaces the footer status line.
type StatusMsg string

type remoteMsg struct {
	cmd   remote.Command
	reply chan error
}

// Sender is the part of tea.Program a sink needs.
type Sender interface {
	Send(msg tea.Msg)
}

// RemoteSink applies bridge commands on the program's goroutine and waits
// for the result.
func RemoteSink(p Sender) remote.Sink {
	return func(ctx context.Context, c remote.Command) error {
		reply := make(chan error, 1)
		p.Send(remoteMsg{cmd: c, reply: reply})
		select {
		case err := <-reply:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
