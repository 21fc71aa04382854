package replay

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tests := []struct {
		description string
		script      string
		expectYaml  string
		expectErr   string
	}{
		{
			description: "lifo order",
			script: `steps:
  - {op: push, value: "1"}
  - {op: push, value: "2"}
  - {op: push, value: "3"}
  - {op: top}
  - {op: pop}
  - {op: top}
  - {op: pop}
  - {op: top}
  - {op: pop}
  - {op: empty}
`,
			expectYaml: `observations:
  - {step: 0, op: push}
  - {step: 1, op: push}
  - {step: 2, op: push}
  - {step: 3, op: top, value: "3"}
  - {step: 4, op: pop}
  - {step: 5, op: top, value: "2"}
  - {step: 6, op: pop}
  - {step: 7, op: top, value: "1"}
  - {step: 8, op: pop}
  - {step: 9, op: empty, value: "true"}
size: 0
capacity: 3
`,
		},
		{
			description: "growth and compacting clone",
			script: `capacity: 2
steps:
  - {op: push, value: a}
  - {op: push, value: b}
  - {op: push, value: c}
  - {op: capacity}
  - {op: clone}
  - {op: capacity}
  - {op: size}
`,
			expectYaml: `observations:
  - {step: 0, op: push}
  - {step: 1, op: push}
  - {step: 2, op: push}
  - {step: 3, op: capacity, value: "5"}
  - {step: 4, op: clone}
  - {step: 5, op: capacity, value: "3"}
  - {step: 6, op: size, value: "3"}
size: 3
capacity: 3
`,
		},
		{
			description: "expected errors",
			script: `steps:
  - {op: top, expectError: empty}
  - {op: pop, expectError: underflow}
  - {op: push, value: x}
  - {op: move}
  - {op: top}
`,
			expectYaml: `observations:
  - {step: 0, op: top, error: "Empty stack!"}
  - {step: 1, op: pop, error: "Pop from empty stack!"}
  - {step: 2, op: push}
  - {step: 3, op: move}
  - {step: 4, op: top, value: x}
size: 1
capacity: 1
`,
		},
		{
			description: "errors without expectation are recorded",
			script: `steps:
  - {op: top}
  - {op: pop}
  - {op: push, value: a}
  - {op: top}
`,
			expectYaml: `observations:
  - {step: 0, op: top, error: "Empty stack!"}
  - {step: 1, op: pop, error: "Pop from empty stack!"}
  - {step: 2, op: push}
  - {step: 3, op: top, value: a}
size: 1
capacity: 1
`,
		},
		{
			description: "missing expected error",
			script:      "steps:\n  - {op: push, value: a}\n  - {op: top, expectError: empty}\n",
			expectErr:   `step 1 (top): expected "Empty stack!" error, got <nil>`,
		},
		{
			description: "wrong expected error",
			script:      "steps:\n  - {op: pop, expectError: empty}\n",
			expectErr:   `expected "Empty stack!" error`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			script, err := Decode([]byte(tc.script))
			require.NoError(t, err)
			actual, err := Run(script, logger)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			expect := &Result{}
			require.NoError(t, yaml.Unmarshal([]byte(tc.expectYaml), expect))
			assert.EqualValues(t, expect, actual)
		})
	}
}

func TestResult_Tops(t *testing.T) {
	script, err := Decode([]byte(basicScript))
	require.NoError(t, err)
	result, err := Run(script, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, result.Tops())
}
