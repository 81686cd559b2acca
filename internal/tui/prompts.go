package tui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInteractiveDisabled is returned when a prompt is needed but interactive
// mode is unavailable (non-terminal stdin or RELGATE_NO_INTERACTIVE set).
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled")

// PromptConfirm asks a yes/no question and returns the choice
func PromptConfirm(message string, defaultYes bool) (bool, error) {
	if !IsInteractive() {
		return false, ErrInteractiveDisabled
	}

	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultYes,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// PromptSelect asks the user to pick one of the given options
func PromptSelect(message string, options []string) (string, error) {
	if !IsInteractive() {
		return "", ErrInteractiveDisabled
	}

	var choice string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = fmt.Errorf("canceled")
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s\n%s\n\n(Press Enter to submit, Ctrl+C to cancel)", m.prompt, m.textInput.View()))
}

// PromptTextInput prompts the user for a line of free text
func PromptTextInput(prompt, placeholder string) (string, error) {
	if !IsInteractive() {
		return "", ErrInteractiveDisabled
	}

	input := textinput.New()
	input.Placeholder = placeholder
	input.Focus()

	model := textInputModel{
		textInput: input,
		prompt:    prompt,
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}

	result := final.(textInputModel)
	if result.err != nil {
		return "", result.err
	}
	return result.textInput.Value(), nil
}
