// Package tools defines agent-invokable actions and a registry that invokes
// them by name with textual input.
package tools

import "context"

// Tool is an action an agent can invoke. Input and output are plain text.
type Tool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
}
