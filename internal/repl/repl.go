package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/leengari/pagedb/internal/engine"
	"github.com/leengari/pagedb/internal/executor"
	"github.com/leengari/pagedb/internal/parser"
)

// MaxLineLength is the longest input line the shell accepts, in bytes
const MaxLineLength = 1 << 20

// Shell reads one line at a time and runs it to completion before reading
// the next.
type Shell struct {
	engine  *engine.Engine
	in      *bufio.Reader
	out     io.Writer
	prompt  string
	maxLine int
	logger  *slog.Logger
}

// New creates a shell reading from in and writing prompts and results to out
func New(eng *engine.Engine, in io.Reader, out io.Writer, prompt string) *Shell {
	return &Shell{
		engine:  eng,
		in:      bufio.NewReader(in),
		out:     out,
		prompt:  prompt,
		maxLine: MaxLineLength,
		logger:  slog.Default(),
	}
}

// Run loops until .exit/.quit or end of input, both of which return nil.
// Lines longer than MaxLineLength are reported and skipped. A failure
// reading input is returned.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, s.prompt)
		raw, tooLong, err := s.readLine()
		if err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return pkgerrors.Wrap(err, "read input")
		}
		if tooLong {
			s.logger.Warn("input line rejected", "reason", "too long", "max_bytes", s.maxLine)
			fmt.Fprintf(s.out, "Error: Line too long (max %d bytes).\n", s.maxLine)
			continue
		}
		line := strings.TrimSpace(raw)

		if line == "" {
			continue
		}

		if isMetaCommand(line) {
			cmd := doMetaCommand(line)
			s.logger.Debug("meta command", "line", line, "result", cmd.String())
			switch cmd {
			case MetaCommandExit:
				return nil
			case MetaCommandUnrecognized:
				fmt.Fprintf(s.out, "Unrecognized Command %s\n", line)
			}
			continue
		}

		if err := s.execute(line); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// maxLine is consumed up to its newline and reported with tooLong set,
// without being buffered whole. io.EOF is returned only when no bytes are left.
func (s *Shell) readLine() (string, bool, error) {
	var line []byte
	tooLong := false
	read := false

	for {
		chunk, err := s.in.ReadSlice('\n')
		read = read || len(chunk) > 0
		if !tooLong {
			line = append(line, chunk...)
			// allow for a trailing \r\n
			if len(line) > s.maxLine+2 {
				tooLong = true
				line = nil
			}
		}

		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && !read {
			return "", false, io.EOF
		}
		if err != nil && err != io.EOF {
			return "", false, err
		}
		break
	}

	if tooLong {
		return "", true, nil
	}
	text := strings.TrimRight(string(line), "\r\n")
	if len(text) > s.maxLine {
		return "", true, nil
	}
	return text, false, nil
}

func (s *Shell) execute(line string) error {
	result, err := s.engine.Execute(line, s.out)
	if err != nil {
		var pe *engine.PrepareError
		if !errors.As(err, &pe) {
			return err
		}
		switch pe.Result {
		case parser.PrepareSyntaxError:
			fmt.Fprintln(s.out, "Syntax error. Could not parse statement.")
		case parser.PrepareUnrecognizedStatement:
			fmt.Fprintf(s.out, "Unrecognized keyword at start of '%s'.\n", line)
		}
		return nil
	}

	switch result.Status {
	case executor.StatusSuccess:
		fmt.Fprintln(s.out, "Executed.")
	case executor.StatusTableFull:
		s.logger.Warn("insert rejected", "reason", "table full", "num_rows", s.engine.Table().NumRows())
		fmt.Fprintln(s.out, "Error: Table full.")
	case executor.StatusCodecFailure:
		s.logger.Warn("insert rejected", "reason", "codec", "error", result.Err)
		fmt.Fprintf(s.out, "Error: %s.\n", codecMessage(result.Err))
	}
	return nil
}

// codecMessage strips the wrapping context and keeps the field message
func codecMessage(err error) string {
	return pkgerrors.Cause(err).Error()
}
