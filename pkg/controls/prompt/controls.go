// Package prompt is a terminal control pack: Control implementations backed
// by survey prompts, covering the built-in field type vocabulary. It exists
// for CLI hosts and as a reference for writing control packs; HTML rendering
// stays with the rendering collaborator.
package prompt

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/goliatone/go-autoform/pkg/controls"
	"github.com/goliatone/go-autoform/pkg/model"
)

// Controls returns a registry mapping for the built-in field types, all
// backed by the supplied driver.
func Controls(driver Driver) map[model.FieldType]controls.Control {
	pack := map[model.FieldType]controls.Control{
		model.TypeText:     textControl(driver, nil),
		model.TypeTextarea: textControl(driver, nil),
		model.TypeTel:      textControl(driver, nil),
		model.TypeURL:      textControl(driver, nil),
		model.TypeColor:    textControl(driver, nil),
		model.TypeEmail:    textControl(driver, validateEmail),
		model.TypeNumber:   numberControl(driver),
		model.TypeDate:     dateControl(driver),
		model.TypePassword: passwordControl(driver),
		model.TypeCheckbox: checkboxControl(driver),
		model.TypeSelect:   selectControl(driver),
		model.TypeRadio:    selectControl(driver),
	}
	return pack
}

// Register installs the pack on a registry.
func Register(registry *controls.Registry, driver Driver) {
	registry.RegisterMany(Controls(driver))
}

func message(props controls.Props) string {
	if props.HideLabel || props.Label == "" {
		return props.Name
	}
	return props.Label
}

func currentString(props controls.Props) string {
	if s, ok := props.Value.Data.(string); ok && props.Value.State == model.StatePresent {
		return s
	}
	return ""
}

func push(props controls.Props, value model.Value) {
	if props.SetValue != nil {
		props.SetValue(value)
	}
	if props.OnBlur != nil {
		props.OnBlur()
	}
}

func textControl(driver Driver, validate func(string) error) controls.Control {
	return controls.ControlFunc(func(w io.Writer, props controls.Props) error {
		if props.Disabled {
			return nil
		}
		wrapped := validate
		if props.Required {
			wrapped = required(validate)
		}
		out, err := driver.Input(InputConfig{
			Message:  message(props),
			Default:  currentString(props),
			Help:     props.Placeholder,
			Validate: wrapped,
		})
		if err != nil {
			return err
		}
		push(props, model.Of(out))
		return nil
	})
}

func passwordControl(driver Driver) controls.Control {
	return controls.ControlFunc(func(w io.Writer, props controls.Props) error {
		if props.Disabled {
			return nil
		}
		out, err := driver.Password(InputConfig{Message: message(props)})
		if err != nil {
			return err
		}
		push(props, model.Of(out))
		return nil
	})
}

func numberControl(driver Driver) controls.Control {
	return controls.ControlFunc(func(w io.Writer, props controls.Props) error {
		if props.Disabled {
			return nil
		}
		out, err := driver.Input(InputConfig{
			Message:  message(props),
			Default:  currentString(props),
			Help:     props.Placeholder,
			Validate: validateNumber(props.Required),
		})
		if err != nil {
			return err
		}
		if out == "" {
			push(props, model.Null())
			return nil
		}
		parsed, err := strconv.ParseFloat(out, 64)
		if err != nil {
			return fmt.Errorf("prompt: parse number: %w", err)
		}
		push(props, model.Of(parsed))
		return nil
	})
}

func dateControl(driver Driver) controls.Control {
	return controls.ControlFunc(func(w io.Writer, props controls.Props) error {
		if props.Disabled {
			return nil
		}
		out, err := driver.Input(InputConfig{
			Message:  message(props),
			Default:  currentString(props),
			Help:     "YYYY-MM-DD",
			Validate: validateDate(props.Required),
		})
		if err != nil {
			return err
		}
		if out == "" {
			push(props, model.Null())
			return nil
		}
		push(props, model.Of(out))
		return nil
	})
}

func checkboxControl(driver Driver) controls.Control {
	return controls.ControlFunc(func(w io.Writer, props controls.Props) error {
		if props.Disabled {
			return nil
		}
		current, _ := props.Value.Data.(bool)
		out, err := driver.Confirm(ConfirmConfig{
			Message: message(props),
			Default: current,
		})
		if err != nil {
			return err
		}
		push(props, model.Of(out))
		return nil
	})
}

func selectControl(driver Driver) controls.Control {
	return controls.ControlFunc(func(w io.Writer, props controls.Props) error {
		if props.Disabled {
			return nil
		}
		if len(props.Options) == 0 {
			return fmt.Errorf("prompt: field %q has no options", props.Name)
		}

		labels := make([]string, 0, len(props.Options))
		defaultIndex := -1
		for idx, option := range props.Options {
			label := option.Label
			if label == "" {
				label = option.Value
			}
			labels = append(labels, label)
			if option.Value == currentString(props) {
				defaultIndex = idx
			}
		}

		choice, err := driver.Select(SelectConfig{
			Message:      message(props),
			Options:      labels,
			DefaultIndex: defaultIndex,
		})
		if err != nil {
			return err
		}
		if choice < 0 || choice >= len(props.Options) {
			return fmt.Errorf("prompt: choice %d out of range for %q", choice, props.Name)
		}
		push(props, model.Of(props.Options[choice].Value))
		return nil
	})
}

func required(validate func(string) error) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("a value is required")
		}
		if validate == nil {
			return nil
		}
		return validate(s)
	}
}

func validateEmail(s string) error {
	if s == "" {
		return nil
	}
	at := -1
	for idx, r := range s {
		if r == '@' {
			at = idx
			break
		}
	}
	if at <= 0 || at == len(s)-1 {
		return fmt.Errorf("%q is not a valid email address", s)
	}
	return nil
}

func validateNumber(requiredField bool) func(string) error {
	return func(s string) error {
		if s == "" {
			if requiredField {
				return fmt.Errorf("a number is required")
			}
			return nil
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		return nil
	}
}

func validateDate(requiredField bool) func(string) error {
	return func(s string) error {
		if s == "" {
			if requiredField {
				return fmt.Errorf("a date is required")
			}
			return nil
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Errorf("%q is not a YYYY-MM-DD date", s)
		}
		return nil
	}
}
