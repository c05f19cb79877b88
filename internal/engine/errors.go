package engine

import (
	"fmt"

	"github.com/leengari/pagedb/internal/parser"
)

// PrepareError is returned when a line cannot be turned into a statement
type PrepareError struct {
	Result parser.PrepareResult // PrepareSyntaxError or PrepareUnrecognizedStatement
	Input  string
}

func (e *PrepareError) Error() string {
	return fmt.Sprintf("%s: %q", e.Result, e.Input)
}
