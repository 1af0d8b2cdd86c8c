// Package model holds the UI-facing field model derived from schema nodes:
// classifications, caller overrides, the resolved field-type vocabulary,
// default-value synthesis, and submit-time empty-value normalization. All of
// it is pure computation; the results feed the control dispatch in
// pkg/controls and the engine in pkg/form.
//
// Values flowing through the engine use the tri-state model.Value so that
// "absent", "null", and "present" survive the trip through synthesis and
// normalization without being conflated with Go zero values.
package model
