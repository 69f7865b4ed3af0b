// Package prompt builds a single control interactively so its markup can be
// previewed from the command line.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-kbs-elements/pkg/controls"
	"github.com/goliatone/go-kbs-elements/pkg/elements"
)

// Builder asks the questions needed to describe one control.
type Builder struct {
	driver Driver
}

// NewBuilder wraps driver.
func NewBuilder(driver Driver) *Builder {
	return &Builder{driver: driver}
}

// Build walks the user through a control definition.
func (b *Builder) Build(ctx context.Context) (controls.Control, error) {
	if b == nil || b.driver == nil {
		return controls.Control{}, errors.New("prompt: no driver")
	}

	kinds := controls.Kinds()
	labels := make([]string, len(kinds))
	for i, kind := range kinds {
		labels[i] = string(kind)
	}
	idx, err := b.driver.Select(ctx, SelectConfig{Message: "Control kind", Options: labels, PageSize: len(labels)})
	if err != nil {
		return controls.Control{}, err
	}
	if idx < 0 || idx >= len(kinds) {
		return controls.Control{}, fmt.Errorf("prompt: kind index %d: %w", idx, controls.ErrUnknownKind)
	}
	control := controls.Control{Kind: kinds[idx]}

	control.Name, err = b.driver.Input(ctx, InputConfig{
		Message:   "Name",
		Help:      "Submitted field name; also used to derive the id.",
		Validator: validateName,
	})
	if err != nil {
		return controls.Control{}, err
	}
	control.Name = strings.TrimSpace(control.Name)

	switch control.Kind {
	case controls.KindSelect, controls.KindCheckboxList, controls.KindRadio:
		err = b.choices(ctx, &control)
	case controls.KindCheckbox:
		var checked bool
		checked, err = b.driver.Confirm(ctx, ConfirmConfig{Message: "Checked?"})
		if checked {
			control.Value = elements.CheckedValue
		}
	case controls.KindText, controls.KindDate, controls.KindUserSearch:
		err = b.textual(ctx, &control)
	case controls.KindTextarea:
		if err = b.textual(ctx, &control); err == nil {
			control.Value, err = b.driver.TextArea(ctx, TextAreaConfig{Message: "Content"})
		}
	case controls.KindNumber:
		if err = b.textual(ctx, &control); err == nil {
			err = b.bounds(ctx, &control)
		}
	case controls.KindHidden:
		control.Value, err = b.driver.Input(ctx, InputConfig{Message: "Value"})
	case controls.KindYear:
		var before string
		before, err = b.driver.Input(ctx, InputConfig{
			Message:   "Years before the current one",
			Default:   strconv.Itoa(elements.DefaultYearsBefore),
			Validator: validateInt,
		})
		if err == nil {
			n, _ := strconv.Atoi(strings.TrimSpace(before))
			control.YearsBefore = elements.Int(n)
		}
	}
	if err != nil {
		return controls.Control{}, err
	}
	return control, nil
}

func (b *Builder) textual(ctx context.Context, control *controls.Control) error {
	var err error
	if control.Label, err = b.driver.Input(ctx, InputConfig{Message: "Label"}); err != nil {
		return err
	}
	if control.Description, err = b.driver.Input(ctx, InputConfig{Message: "Description"}); err != nil {
		return err
	}
	if control.Placeholder, err = b.driver.Input(ctx, InputConfig{Message: "Placeholder"}); err != nil {
		return err
	}
	if control.Kind == controls.KindTextarea {
		return nil
	}
	value, err := b.driver.Input(ctx, InputConfig{Message: "Value"})
	if err != nil {
		return err
	}
	if value != "" {
		control.Value = value
	}
	return nil
}

func (b *Builder) bounds(ctx context.Context, control *controls.Control) error {
	for _, bound := range []struct {
		message string
		into    **int
	}{
		{"Minimum (blank for none)", &control.Min},
		{"Maximum (blank for none)", &control.Max},
	} {
		raw, err := b.driver.Input(ctx, InputConfig{Message: bound.message, Validator: validateOptionalInt})
		if err != nil {
			return err
		}
		if raw = strings.TrimSpace(raw); raw != "" {
			n, _ := strconv.Atoi(raw)
			*bound.into = elements.Int(n)
		}
	}
	return nil
}

func (b *Builder) choices(ctx context.Context, control *controls.Control) error {
	raw, err := b.driver.Input(ctx, InputConfig{
		Message:   "Options",
		Help:      "Comma separated key=label pairs, e.g. 1=Ada, 2=Grace",
		Validator: validateOptions,
	})
	if err != nil {
		return err
	}
	control.Options = ParseOptions(raw)

	labels := make([]string, len(control.Options))
	for i, choice := range control.Options {
		labels[i] = choice.Label
	}

	multi := control.Kind == controls.KindCheckboxList
	if control.Kind == controls.KindSelect {
		if multi, err = b.driver.Confirm(ctx, ConfirmConfig{Message: "Allow multiple selections?"}); err != nil {
			return err
		}
		control.Multiple = multi
	}

	if multi {
		picked, err := b.driver.MultiSelect(ctx, SelectConfig{Message: "Selected", Options: labels})
		if err != nil {
			return err
		}
		keys := make([]any, 0, len(picked))
		for _, idx := range picked {
			keys = append(keys, control.Options[idx].Key)
		}
		control.Selected = keys
		return nil
	}

	idx, err := b.driver.Select(ctx, SelectConfig{Message: "Selected", Options: labels})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(control.Options) {
		control.Selected = control.Options[idx].Key
	}
	return nil
}

// ParseOptions reads "key=label" pairs separated by commas. A bare entry is
// used as both key and label.
func ParseOptions(raw string) elements.Options {
	var out elements.Options
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, label, found := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		label = strings.TrimSpace(label)
		if !found || label == "" {
			label = key
		}
		out = out.Add(key, label)
	}
	return out
}

func validateName(value string) error {
	if elements.SanitizeIdentifier(strings.TrimSpace(value)) == "" {
		return errors.New("name needs at least one letter, digit, - or _")
	}
	return nil
}

func validateInt(value string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

func validateOptionalInt(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return validateInt(value)
}

func validateOptions(value string) error {
	if len(ParseOptions(value)) == 0 {
		return errors.New("enter at least one option")
	}
	return nil
}
