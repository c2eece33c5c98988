package shell

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vvka-141/vshell/internal/logging"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// Identity is the user and host shown in the prompt.
type Identity struct {
	Username string
	Hostname string
}

// Result reports what the interpreter did with a line.
type Result struct {
	// Exit is set when the line asked to end the session.
	Exit bool
}

// Interpreter executes command lines one at a time against a Session and
// appends a prompt line and an output block per command to a Display.
// It is not safe for concurrent use.
type Interpreter struct {
	id      Identity
	session *Session
	display vshell.Display
	now     func() time.Time
	logger  vshell.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock sets the time source used by date and cal.
func WithClock(now func() time.Time) Option {
	return func(in *Interpreter) { in.now = now }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger vshell.Logger) Option {
	return func(in *Interpreter) { in.logger = logger }
}

// NewInterpreter creates an interpreter for session writing to display.
func NewInterpreter(id Identity, session *Session, display vshell.Display, opts ...Option) *Interpreter {
	in := &Interpreter{
		id:      id,
		session: session,
		display: display,
		now:     time.Now,
		logger:  logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Prompt renders the prompt for the current directory.
func (in *Interpreter) Prompt() string {
	return fmt.Sprintf("%s@%s:/%s$ ", in.id.Username, in.id.Hostname, in.session.Cwd())
}

// Execute runs a single command line. Command failures are rendered to the
// display; nothing escapes as an error.
func (in *Interpreter) Execute(line string) Result {
	line = strings.TrimSpace(line)
	in.display.Append(in.Prompt() + line)

	cmd := Parse(line)
	in.logger.Verbose("execute %T in /%s", cmd, in.session.Cwd())

	switch c := cmd.(type) {
	case EmptyCmd:
		return Result{}
	case ExitCmd:
		return Result{Exit: true}
	case ListCmd:
		in.display.Append(in.list())
	case ChangeDirCmd:
		in.display.Append(in.changeDirectory(c.Path))
	case ReverseCmd:
		in.display.Append(in.reverse(c.Path))
	case CalendarCmd:
		in.display.Append(formatMonth(in.now()))
	case DateCmd:
		in.display.Append(formatDate(in.now()))
	case UnknownCmd:
		in.logger.Verbose("%v: %s", vshell.ErrUnknownCommand, c.Line)
		in.display.Append("Command not found: " + c.Line)
	default:
		panic(fmt.Sprintf("shell: unhandled command %T", cmd))
	}
	return Result{}
}

// Replay runs lines in order through Execute, stopping after an exit.
func (in *Interpreter) Replay(lines []string) Result {
	for _, line := range lines {
		if res := in.Execute(line); res.Exit {
			return res
		}
	}
	return Result{}
}

func (in *Interpreter) list() string {
	names, ok := in.session.List()
	if !ok {
		in.logger.Verbose("%v at /%s", vshell.ErrEmptyListing, in.session.Cwd())
		return "ls: no such file or directory"
	}
	return strings.Join(names, "\n")
}

func (in *Interpreter) changeDirectory(token string) string {
	outcome, err := in.session.ChangeDirectory(token)
	if err != nil {
		return err.Error()
	}
	switch outcome {
	case OutcomeMoved:
		return "Moved to directory: " + in.session.Cwd().String()
	case OutcomeChanged:
		return "Changed directory to " + in.session.Cwd().String()
	default:
		return "cd: no operation"
	}
}

func (in *Interpreter) reverse(token string) string {
	lines, err := in.session.ReadFileReversed(token)
	if err != nil {
		var readErr *ReadError
		if errors.As(err, &readErr) {
			in.logger.Error("reading %s: %v", token, readErr.Err)
		}
		return err.Error()
	}
	return strings.Join(lines, "\n")
}
