// Package prompt provides the interactive confirmation used by bump -i.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled reports that the user aborted the prompt.
var ErrCancelled = errors.New("cancelled by user")

// Prompter wraps basic prompting functionality for testability.
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter.
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter.
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// Confirm asks a yes/no question on the terminal. Default answer is no.
func Confirm(question string) (bool, error) {
	prompter := NewLinerPrompter()
	defer func() { _ = prompter.Close() }()
	return ConfirmWithPrompter(prompter, question)
}

// ConfirmWithPrompter asks a yes/no question using a custom prompter.
func ConfirmWithPrompter(prompter Prompter, question string) (bool, error) {
	answer, err := prompter.Prompt(color.CyanString(question + " [y/N] "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
