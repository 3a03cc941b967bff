package construct

import (
	"strings"

	"github.com/pkg/errors"
)

// The active construction tool.
type Tool int

const (
	ToolLine Tool = iota
	ToolExtend
	ToolCircle
)

var toolNames = [...]string{"line", "extend", "circle"}

func Tools() []Tool {
	return []Tool{ToolLine, ToolExtend, ToolCircle}
}

func (t Tool) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return toolNames[t]
}

func (t Tool) Valid() bool {
	return t >= 0 && int(t) < len(toolNames)
}

func ParseTool(name string) (Tool, error) {
	for i, n := range toolNames {
		if strings.EqualFold(n, name) {
			return Tool(i), nil
		}
	}
	return 0, errors.Errorf("unknown tool %q (want one of %s)", name, strings.Join(toolNames[:], ", "))
}
