package ui

// pagerClosedMsg is sent when the forecast pager exits
type pagerClosedMsg struct {
	err error
}
