package repl

import "fmt"

// MetaCommand is the closed set of outcomes for dot-prefixed lines
type MetaCommand int

const (
	MetaCommandExit MetaCommand = iota
	MetaCommandUnrecognized
)

func (m MetaCommand) String() string {
	switch m {
	case MetaCommandExit:
		return "exit"
	case MetaCommandUnrecognized:
		return "unrecognized"
	default:
		return fmt.Sprintf("MetaCommand(%d)", int(m))
	}
}

// isMetaCommand reports whether line is a dot command
func isMetaCommand(line string) bool {
	return len(line) > 0 && line[0] == '.'
}

// doMetaCommand matches the literal meta commands
func doMetaCommand(line string) MetaCommand {
	switch line {
	case ".exit", ".quit":
		return MetaCommandExit
	default:
		return MetaCommandUnrecognized
	}
}
