// Package replay runs YAML operation scripts against a lifo.Stack[string].
package replay

import (
	"context"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const (
	OpPush     = "push"
	OpPop      = "pop"
	OpTop      = "top"
	OpSize     = "size"
	OpCapacity = "capacity"
	OpEmpty    = "empty"
	OpClone    = "clone"
	OpMove     = "move"
)

// Expected error names accepted in Step.ExpectError.
const (
	ExpectEmpty     = "empty"
	ExpectUnderflow = "underflow"
)

var ops = []string{OpPush, OpPop, OpTop, OpSize, OpCapacity, OpEmpty, OpClone, OpMove}

type Step struct {
	Op          string `yaml:"op"`
	Value       string `yaml:"value,omitempty"`
	ExpectError string `yaml:"expectError,omitempty"`
}

type Script struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity,omitempty"`
	Steps    []Step `yaml:"steps"`
}

// Load downloads the script at location and decodes it.
func Load(ctx context.Context, fs afs.Service, location string) (*Script, error) {
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download script %v", location)
	}
	script, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid script %v", location)
	}
	return script, nil
}

func Decode(data []byte) (*Script, error) {
	script := &Script{}
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, errors.Wrap(err, "failed to decode yaml")
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

func (s *Script) Validate() error {
	if s.Capacity < 0 {
		return errors.Errorf("negative capacity %d", s.Capacity)
	}
	for i, step := range s.Steps {
		if !slices.Contains(ops, step.Op) {
			return errors.Errorf("step %d: unknown op %q", i, step.Op)
		}
		switch step.ExpectError {
		case "", ExpectEmpty, ExpectUnderflow:
		default:
			return errors.Errorf("step %d: unknown expected error %q", i, step.ExpectError)
		}
	}
	return nil
}
