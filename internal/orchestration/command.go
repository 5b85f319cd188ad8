package orchestration

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies an explorer command.
type Kind int

// Explorer commands.
const (
	KindInvalid Kind = iota
	KindSequence
	KindUpTo
	KindFind
	KindCheck
	KindRatio
	KindBinet
	KindStats
	KindHelp
	KindQuit
)

// CommandSpec describes one command of the explorer language.
type CommandSpec struct {
	Kind    Kind
	Verb    string
	Aliases []string
	// Arg names the single argument, or is empty for commands that take none.
	Arg     string
	Summary string
}

// Usage renders the command's synopsis, e.g. "seq <n>".
func (s CommandSpec) Usage() string {
	if s.Arg == "" {
		return s.Verb
	}
	return fmt.Sprintf("%s <%s>", s.Verb, s.Arg)
}

// Commands lists the explorer language in help order.
var Commands = []CommandSpec{
	{Kind: KindSequence, Verb: "seq", Arg: "n", Summary: "Generate the first n Fibonacci numbers"},
	{Kind: KindUpTo, Verb: "upto", Arg: "max", Summary: "Generate numbers up to max value"},
	{Kind: KindFind, Verb: "find", Arg: "n", Summary: "Find the nth Fibonacci number"},
	{Kind: KindCheck, Verb: "check", Arg: "num", Summary: "Check if a number is a Fibonacci number"},
	{Kind: KindRatio, Verb: "ratio", Arg: "n", Summary: "Analyze ratios for the first n numbers"},
	{Kind: KindBinet, Verb: "binet", Arg: "n", Summary: "Compare F(n) with Binet's formula"},
	{Kind: KindStats, Verb: "stats", Summary: "Show how often each command ran"},
	{Kind: KindHelp, Verb: "help", Aliases: []string{"h", "?"}, Summary: "Show this help"},
	{Kind: KindQuit, Verb: "quit", Aliases: []string{"exit", "q"}, Summary: "Exit the explorer"},
}

var specsByVerb = func() map[string]CommandSpec {
	m := make(map[string]CommandSpec)
	for _, s := range Commands {
		m[s.Verb] = s
		for _, a := range s.Aliases {
			m[a] = s
		}
	}
	return m
}()

// String returns the command's verb.
func (k Kind) String() string {
	for _, s := range Commands {
		if s.Kind == k {
			return s.Verb
		}
	}
	return "invalid"
}

// Spec returns the CommandSpec of k.
func (k Kind) Spec() (CommandSpec, bool) {
	for _, s := range Commands {
		if s.Kind == k {
			return s, true
		}
	}
	return CommandSpec{}, false
}

// ErrEmptyCommand is returned by Parse for a blank line.
var ErrEmptyCommand = errors.New("empty command")

// UnknownCommandError reports a verb outside the explorer language.
type UnknownCommandError struct {
	Verb string
}

func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Verb)
}

// UsageError reports a known command called with the wrong number of
// arguments.
type UsageError struct {
	Spec CommandSpec
}

func (e UsageError) Error() string {
	return "usage: " + e.Spec.Usage()
}

// Command is a parsed explorer line.
type Command struct {
	Kind Kind
	// Arg is the raw argument, empty for commands that take none.
	Arg string
}

// Parse splits a line into a Command. Verbs are case-insensitive; commands
// taking an argument require exactly one.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	verb := strings.ToLower(fields[0])
	spec, ok := specsByVerb[verb]
	if !ok {
		return Command{}, UnknownCommandError{Verb: verb}
	}

	args := fields[1:]
	want := 0
	if spec.Arg != "" {
		want = 1
	}
	if len(args) != want {
		return Command{}, UsageError{Spec: spec}
	}

	cmd := Command{Kind: spec.Kind}
	if want == 1 {
		cmd.Arg = args[0]
	}
	return cmd, nil
}
