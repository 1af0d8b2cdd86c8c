package prompt

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a text-style prompt.
type InputConfig struct {
	Message  string
	Default  string
	Help     string
	Validate func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single-choice prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
}

// Driver abstracts the terminal prompt implementation so controls can be
// tested without a real terminal.
type Driver interface {
	Input(cfg InputConfig) (string, error)
	Password(cfg InputConfig) (string, error)
	Confirm(cfg ConfirmConfig) (bool, error)
	Select(cfg SelectConfig) (int, error)
}

// ErrInterrupted reports that the user aborted a prompt.
var ErrInterrupted = errors.New("prompt: interrupted")

type surveyDriver struct{}

// NewSurveyDriver returns the survey-backed terminal driver.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(cfg InputConfig) (string, error) {
	var out string
	ask := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(ask, &out, askOptions(cfg.Validate)...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Password(cfg InputConfig) (string, error) {
	var out string
	ask := &survey.Password{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(ask, &out, askOptions(cfg.Validate)...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(cfg ConfirmConfig) (bool, error) {
	var out bool
	ask := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(ask, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(cfg SelectConfig) (int, error) {
	var out int
	ask := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		ask.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(ask, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

func askOptions(validate func(string) error) []survey.AskOpt {
	if validate == nil {
		return nil
	}
	return []survey.AskOpt{
		survey.WithValidator(func(answer any) error {
			s, _ := answer.(string)
			return validate(s)
		}),
	}
}

func translateSurveyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return fmt.Errorf("prompt: %w", err)
}
