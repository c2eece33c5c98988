package shell

import "strings"

// Command is a parsed command line. The set of implementations is closed.
type Command interface {
	command()
}

// ListCmd is "ls". Arguments are ignored.
type ListCmd struct{}

// ChangeDirCmd is "cd <path>". A missing path is the empty token.
type ChangeDirCmd struct{ Path string }

// CalendarCmd is "cal". Arguments are ignored.
type CalendarCmd struct{}

// ReverseCmd is "tac <path>".
type ReverseCmd struct{ Path string }

// DateCmd is "date". Arguments are ignored.
type DateCmd struct{}

// ExitCmd is "exit".
type ExitCmd struct{}

// EmptyCmd is a blank line.
type EmptyCmd struct{}

// UnknownCmd is any other line.
type UnknownCmd struct{ Line string }

func (ListCmd) command()      {}
func (ChangeDirCmd) command() {}
func (CalendarCmd) command()  {}
func (ReverseCmd) command()   {}
func (DateCmd) command()      {}
func (ExitCmd) command()      {}
func (EmptyCmd) command()     {}
func (UnknownCmd) command()   {}

// Parse classifies a raw command line by its first whitespace-delimited field.
// The argument is the rest of the line with surrounding whitespace removed.
func Parse(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return EmptyCmd{}
	}

	verb, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		verb, arg = line[:i], strings.TrimSpace(line[i+1:])
	}

	switch verb {
	case "ls":
		return ListCmd{}
	case "cd":
		return ChangeDirCmd{Path: arg}
	case "cal":
		return CalendarCmd{}
	case "tac":
		return ReverseCmd{Path: arg}
	case "date":
		return DateCmd{}
	case "exit":
		return ExitCmd{}
	default:
		return UnknownCmd{Line: line}
	}
}
