package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in the ov pager. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while ov runs.
type pagerCommand struct {
	content string
}

// Run opens ov on the content and blocks until the user quits it
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Do not write the pager contents back to the terminal on exit.
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself.
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showInPager returns a command that pages content and reports back with a pagerClosedMsg
func showInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
