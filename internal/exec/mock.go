package exec

import (
	"context"
	"strings"
)

// MockCommander records calls and replays preset responses, keyed by the
// command line "command arg1 arg2 ...".
type MockCommander struct {
	Responses map[string]CommandResponse
	Calls     []CommandCall
}

// CommandCall records a single invocation.
type CommandCall struct {
	Dir     string
	Command string
	Args    []string
}

// CommandResponse is what a mocked command returns.
type CommandResponse struct {
	Output []byte
	Err    error
}

func NewMockCommander() *MockCommander {
	return &MockCommander{Responses: make(map[string]CommandResponse)}
}

// Run records the call and returns the preset response, or nil output and
// nil error when none is configured.
func (m *MockCommander) Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Dir: dir, Command: command, Args: args})

	if resp, ok := m.Responses[commandKey(command, args)]; ok {
		return resp.Output, resp.Err
	}
	return nil, nil
}

// SetResponse configures the response for one command line.
func (m *MockCommander) SetResponse(command string, args []string, output []byte, err error) {
	m.Responses[commandKey(command, args)] = CommandResponse{Output: output, Err: err}
}

// LastCall returns the most recent invocation, or nil when none happened.
func (m *MockCommander) LastCall() *CommandCall {
	if len(m.Calls) == 0 {
		return nil
	}
	return &m.Calls[len(m.Calls)-1]
}

func commandKey(command string, args []string) string {
	if len(args) == 0 {
		return command
	}
	return command + " " + strings.Join(args, " ")
}
