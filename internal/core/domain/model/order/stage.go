package order

import (
	"fmt"

	"salesflow/internal/pkg/errs"
)

// Stage is the position of an order in the fulfillment pipeline.
//
// The pipeline is a fixed total order with no branching:
//
//	SalesSupport ──> Procurement ──> RMInventory ──> Quality ──> FGInventory
//
// FGInventory is terminal for pipeline advancement; progress after it is
// expressed through Status (ReadyForFG, Invoiced).
type Stage int

const (
	// UnknownStage catches uninitialized Stage values.
	UnknownStage Stage = iota
	SalesSupport
	Procurement
	RMInventory
	Quality
	FGInventory
)

// pipeline is the single source of truth for stage ordering. The successor of
// pipeline[i] is pipeline[i+1].
var pipeline = []Stage{
	SalesSupport,
	Procurement,
	RMInventory,
	Quality,
	FGInventory,
}

var stageStrings = map[Stage]string{
	SalesSupport: "SalesSupport",
	Procurement:  "Procurement",
	RMInventory:  "RMInventory",
	Quality:      "Quality",
	FGInventory:  "FGInventory",
}

// Pipeline returns the stages in pipeline order.
func Pipeline() []Stage {
	stages := make([]Stage, len(pipeline))
	copy(stages, pipeline)
	return stages
}

// FirstStage is the stage every new order starts in.
func FirstStage() Stage {
	return pipeline[0]
}

// ParseStage converts a persisted or user-supplied stage name into a Stage.
func ParseStage(s string) (Stage, error) {
	for stage, name := range stageStrings {
		if name == s {
			return stage, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a pipeline stage", s))
}

// Validate returns an error unless s is one of the five pipeline stages.
func (s Stage) Validate() error {
	if _, ok := stageStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a pipeline stage", s))
	}
	return nil
}

func (s Stage) String() string {
	if name, ok := stageStrings[s]; ok {
		return name
	}
	return "Unknown"
}

// Next returns the successor of s. ok is false for the terminal stage and for
// invalid stages.
func (s Stage) Next() (next Stage, ok bool) {
	for i, stage := range pipeline {
		if stage == s && i+1 < len(pipeline) {
			return pipeline[i+1], true
		}
	}
	return UnknownStage, false
}

// IsTerminal reports whether s is the last stage of the pipeline.
func (s Stage) IsTerminal() bool {
	return s == pipeline[len(pipeline)-1]
}
