// Package trace replays scripted operation sequences onto a ring array.
package trace

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ra "github.com/sushydev/ring_array_go"
	"github.com/sushydev/ring_array_go/internal/logger"
)

const (
	OpPush    = "push"
	OpPop     = "pop"
	OpShift   = "shift"
	OpUnshift = "unshift"
	OpSet     = "set"
	OpRead    = "read"
)

//go:embed reference.yaml
var reference []byte

type Step struct {
	Op    string `yaml:"op"`
	Value int    `yaml:"value,omitempty"`
	Index int    `yaml:"index,omitempty"`
}

type Script struct {
	Capacity int    `yaml:"capacity"`
	Steps    []Step `yaml:"steps"`
}

type Result struct {
	Items    []int
	Reads    []int
	Slots    []int
	Capacity int
	Start    int
	Length   int
}

func Parse(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse trace script: %w", err)
	}

	return &script, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Default returns the reference trace: capacity 4, ending as [3, 1] in a
// store of capacity 8.
func Default() *Script {
	script, err := Parse(reference)
	if err != nil {
		panic(err)
	}
	return script
}

// Run replays script onto a fresh ring array of ints. It stops at the first
// failing step.
func Run(script *Script) (*Result, error) {
	array, err := ra.NewRingArray[int](script.Capacity)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i, step := range script.Steps {
		if err := apply(array, step, result); err != nil {
			logger.Warn("step failed", "step", i, "op", step.Op, "error", err)
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}

		logger.Debug("step",
			"step", i,
			"op", step.Op,
			"items", array.Items(),
			"slots", array.Slots(),
			"start", array.Start(),
			"length", array.Len(),
			"capacity", array.Cap(),
		)
	}

	result.Items = array.Items()
	result.Slots = array.Slots()
	result.Capacity = array.Cap()
	result.Start = array.Start()
	result.Length = array.Len()

	return result, nil
}

func apply(array *ra.RingArray[int], step Step, result *Result) error {
	switch step.Op {
	case OpPush:
		array.Push(step.Value)
	case OpUnshift:
		array.Unshift(step.Value)
	case OpPop:
		return array.Pop()
	case OpShift:
		return array.Shift()
	case OpSet:
		return array.Set(step.Value, step.Index)
	case OpRead:
		v, err := array.Read(step.Index)
		if err != nil {
			return err
		}
		result.Reads = append(result.Reads, v)
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}

	return nil
}
