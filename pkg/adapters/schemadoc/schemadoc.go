// Package schemadoc parses declarative schema documents, in JSON or YAML,
// into the node algebra. Documents mirror the algebra one to one: a kind plus
// the slots that kind uses, with optional/nullable shorthand flags so common
// field declarations stay a single line.
package schemadoc

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-autoform/pkg/schema"
)

// nodeDoc is the wire form of a schema node. Wrapper kinds can be spelled
// explicitly (kind: optional, inner: ...) or via the shorthand flags, which
// wrap the declared node after construction.
type nodeDoc struct {
	Kind    string             `json:"kind" yaml:"kind"`
	Inner   *nodeDoc           `json:"inner,omitempty" yaml:"inner,omitempty"`
	Fields  map[string]nodeDoc `json:"fields,omitempty" yaml:"fields,omitempty"`
	Element *nodeDoc           `json:"element,omitempty" yaml:"element,omitempty"`
	Options []nodeDoc          `json:"options,omitempty" yaml:"options,omitempty"`
	Values  []string           `json:"values,omitempty" yaml:"values,omitempty"`
	Literal any                `json:"literal,omitempty" yaml:"literal,omitempty"`
	Default any                `json:"default,omitempty" yaml:"default,omitempty"`
	Checks  []string           `json:"checks,omitempty" yaml:"checks,omitempty"`

	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

// Parse decodes a schema document, sniffing JSON versus YAML from the
// payload. JSON documents start with an object or array opener; everything
// else goes through the YAML decoder, which also accepts JSON.
func Parse(raw []byte) (schema.Node, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return schema.Node{}, fmt.Errorf("schemadoc: document is empty")
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return ParseJSON(raw)
	}
	return ParseYAML(raw)
}

// ParseJSON decodes a JSON schema document.
func ParseJSON(raw []byte) (schema.Node, error) {
	var doc nodeDoc
	if err := gojson.Unmarshal(raw, &doc); err != nil {
		return schema.Node{}, fmt.Errorf("schemadoc: decode json: %w", err)
	}
	return build(doc)
}

// ParseYAML decodes a YAML schema document.
func ParseYAML(raw []byte) (schema.Node, error) {
	var doc nodeDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return schema.Node{}, fmt.Errorf("schemadoc: decode yaml: %w", err)
	}
	return build(doc)
}

func build(doc nodeDoc) (schema.Node, error) {
	node, err := buildBase(doc)
	if err != nil {
		return schema.Node{}, err
	}

	for _, check := range doc.Checks {
		node = node.WithCheck(schema.Check(check))
	}
	if doc.Default != nil && schema.Kind(doc.Kind) != schema.KindDefault {
		node = schema.WithDefault(node, doc.Default)
	}
	if doc.Nullable {
		node = schema.Nullable(node)
	}
	if doc.Optional {
		node = schema.Optional(node)
	}
	return node, nil
}

func buildBase(doc nodeDoc) (schema.Node, error) {
	switch schema.Kind(doc.Kind) {
	case schema.KindString:
		return schema.String(), nil
	case schema.KindNumber:
		return schema.Number(), nil
	case schema.KindBoolean:
		return schema.Boolean(), nil
	case schema.KindDate:
		return schema.Date(), nil
	case schema.KindEnum:
		if len(doc.Values) == 0 {
			return schema.Node{}, fmt.Errorf("schemadoc: enum requires values")
		}
		return schema.Enum(doc.Values...), nil
	case schema.KindLiteral:
		return schema.Literal(doc.Literal), nil
	case schema.KindArray:
		if doc.Element == nil {
			return schema.Node{}, fmt.Errorf("schemadoc: array requires an element")
		}
		element, err := build(*doc.Element)
		if err != nil {
			return schema.Node{}, err
		}
		return schema.Array(element), nil
	case schema.KindObject:
		fields := make(map[string]schema.Node, len(doc.Fields))
		for name, fieldDoc := range doc.Fields {
			field, err := build(fieldDoc)
			if err != nil {
				return schema.Node{}, fmt.Errorf("schemadoc: field %q: %w", name, err)
			}
			fields[name] = field
		}
		return schema.Object(fields), nil
	case schema.KindUnion:
		if len(doc.Options) == 0 {
			return schema.Node{}, fmt.Errorf("schemadoc: union requires options")
		}
		options := make([]schema.Node, 0, len(doc.Options))
		for _, optionDoc := range doc.Options {
			option, err := build(optionDoc)
			if err != nil {
				return schema.Node{}, err
			}
			options = append(options, option)
		}
		return schema.Union(options...), nil
	case schema.KindOptional, schema.KindNullable, schema.KindEffect:
		if doc.Inner == nil {
			return schema.Node{}, fmt.Errorf("schemadoc: %s requires an inner node", doc.Kind)
		}
		inner, err := build(*doc.Inner)
		if err != nil {
			return schema.Node{}, err
		}
		switch schema.Kind(doc.Kind) {
		case schema.KindOptional:
			return schema.Optional(inner), nil
		case schema.KindNullable:
			return schema.Nullable(inner), nil
		default:
			return schema.Effect(inner), nil
		}
	case schema.KindDefault:
		if doc.Inner == nil {
			return schema.Node{}, fmt.Errorf("schemadoc: default requires an inner node")
		}
		inner, err := build(*doc.Inner)
		if err != nil {
			return schema.Node{}, err
		}
		return schema.WithDefault(inner, doc.Default), nil
	default:
		return schema.Node{}, fmt.Errorf("schemadoc: unsupported kind %q", doc.Kind)
	}
}
