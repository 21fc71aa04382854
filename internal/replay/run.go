package replay

import (
	"log/slog"
	"strconv"

	"github.com/pkg/errors"

	"lifo"
)

// Observation is what a single step saw.
type Observation struct {
	Step  int    `yaml:"step"`
	Op    string `yaml:"op"`
	Value string `yaml:"value,omitempty"`
	Error string `yaml:"error,omitempty"`
}

type Result struct {
	Observations []Observation `yaml:"observations"`
	Size         int           `yaml:"size"`
	Capacity     int           `yaml:"capacity"`
}

// Tops returns the values observed by top steps, in order.
func (r *Result) Tops() []string {
	var result []string
	for _, o := range r.Observations {
		if o.Op == OpTop && o.Error == "" {
			result = append(result, o.Value)
		}
	}
	return result
}

// Run replays script on a fresh stack. Empty and underflow errors are
// recorded in the step's observation and the run goes on; the run fails when
// a step names an ExpectError it did not get, or on any other error.
func Run(script *Script, logger *slog.Logger) (*Result, error) {
	stack := lifo.NewWithCapacity[string](script.Capacity)
	defer func() { stack.Release() }()

	result := &Result{}
	for i, step := range script.Steps {
		o := Observation{Step: i, Op: step.Op}
		var err error
		switch step.Op {
		case OpPush:
			err = stack.Push(step.Value)
		case OpPop:
			err = stack.Pop()
		case OpTop:
			o.Value, err = stack.Peek()
		case OpSize:
			o.Value = strconv.Itoa(stack.Size())
		case OpCapacity:
			o.Value = strconv.Itoa(stack.Capacity())
		case OpEmpty:
			o.Value = strconv.FormatBool(stack.IsEmpty())
		case OpClone:
			var c *lifo.Stack[string]
			if c, err = stack.Clone(); err == nil {
				stack.MoveFrom(c)
			}
		case OpMove:
			stack = stack.Move()
		default:
			return nil, errors.Errorf("step %d: unknown op %q", i, step.Op)
		}
		if err != nil {
			o.Error = err.Error()
		}
		if err = check(step, err); err != nil {
			return nil, errors.Wrapf(err, "step %d (%v)", i, step.Op)
		}
		logger.Debug("step", "index", i, "op", step.Op, "value", o.Value, "error", o.Error,
			"size", stack.Size(), "capacity", stack.Capacity())
		result.Observations = append(result.Observations, o)
	}
	result.Size = stack.Size()
	result.Capacity = stack.Capacity()
	logger.Info("replayed script", "name", script.Name, "steps", len(script.Steps),
		"size", result.Size, "capacity", result.Capacity)
	return result, nil
}

func check(step Step, err error) error {
	switch step.ExpectError {
	case ExpectEmpty:
		if !errors.Is(err, lifo.ErrEmpty) {
			return errors.Errorf("expected %q error, got %v", lifo.ErrEmpty, err)
		}
		return nil
	case ExpectUnderflow:
		if !errors.Is(err, lifo.ErrUnderflow) {
			return errors.Errorf("expected %q error, got %v", lifo.ErrUnderflow, err)
		}
		return nil
	}
	if errors.Is(err, lifo.ErrEmpty) || errors.Is(err, lifo.ErrUnderflow) {
		return nil
	}
	return err
}
