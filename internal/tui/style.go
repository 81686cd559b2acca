package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true)
	ticketStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true)
)

// ColorBranchName renders a branch name for terminal output
func ColorBranchName(name string) string {
	if !ColorEnabled() {
		return name
	}
	return branchStyle.Render(name)
}

// ColorTicket renders a ticket id for terminal output
func ColorTicket(ticket string) string {
	if !ColorEnabled() {
		return ticket
	}
	return ticketStyle.Render(ticket)
}

// ColorSuccess renders a success fragment for terminal output
func ColorSuccess(s string) string {
	if !ColorEnabled() {
		return s
	}
	return successStyle.Render(s)
}

// ColorURL renders a URL for terminal output
func ColorURL(url string) string {
	if !ColorEnabled() {
		return url
	}
	return urlStyle.Render(url)
}
