package controls

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-autoform/pkg/model"
)

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// PropsInput collects everything the props builder combines for one field.
type PropsInput struct {
	Name           string
	Classification model.Classification
	Override       *model.Override
	Type           model.FieldType
	// Translate maps a field name to display text; nil disables lookup.
	Translate func(string) string
	Value     model.Value
	SetValue  func(model.Value)
	OnBlur    func()
	Errors    []string
}

// BuildProps assembles the complete props bundle for a field. Labels resolve
// override first, then translation, then the humanized field name. Options
// come from the override when given, otherwise from the inferred enum values.
// Description markup is sanitized before it reaches any control.
func BuildProps(in PropsInput) Props {
	props := Props{
		Name:     in.Name,
		Type:     in.Type,
		Required: !in.Classification.Optional,
		Value:    in.Value,
		SetValue: in.SetValue,
		OnBlur:   in.OnBlur,
		Errors:   in.Errors,
	}

	if o := in.Override; o != nil {
		props.Placeholder = o.Placeholder
		props.Disabled = o.Disabled
		props.HideLabel = o.HideLabel
		props.Description = sanitizeDescription(o.Description)
	}

	props.Label = resolveLabel(in)
	props.Options = resolveOptions(in.Classification, in.Override)

	return props
}

func resolveLabel(in PropsInput) string {
	if in.Override != nil && in.Override.Label != "" {
		return in.Override.Label
	}
	if in.Translate != nil {
		if translated := strings.TrimSpace(in.Translate(in.Name)); translated != "" {
			return translated
		}
	}
	return model.DefaultLabeler(in.Name)
}

func resolveOptions(c model.Classification, override *model.Override) []model.Option {
	if override != nil && len(override.Options) > 0 {
		return append([]model.Option(nil), override.Options...)
	}
	if len(c.EnumValues) == 0 {
		return nil
	}
	options := make([]model.Option, 0, len(c.EnumValues))
	for _, value := range c.EnumValues {
		options = append(options, model.Option{
			Value: value,
			Label: model.DefaultLabeler(value),
		})
	}
	return options
}

// sanitizeDescription strips everything but basic inline formatting from
// override-supplied description markup.
func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(descriptionSanitizer().Sanitize(trimmed))
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code", "br", "small")
		policy.AllowAttrs("href", "rel", "target").OnElements("a")
		policy.AllowElements("a")
		policy.RequireNoFollowOnLinks(true)
		descriptionPolicy = policy
	})
	return descriptionPolicy
}
