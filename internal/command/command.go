package command

import (
	"fmt"
	"strings"
)

// Status messages shown for recoverable command failures.
const (
	MsgNotEditorCommand = "Not an editor command"
	MsgNoFileSpecified  = "No File Specified"
)

// Env is what commands may do to the session.
type Env interface {
	// RequestQuit asks the session to end after the current command.
	RequestQuit()

	// FileName returns the associated file name, or "" if there is none.
	FileName() string

	// SetFileName associates the session with name.
	SetFileName(name string)

	// WriteFile writes the document to path and reports what was written.
	WriteFile(path string) (lines, bytes int, err error)

	// SetMessage replaces the status message.
	SetMessage(msg string)
}

// Handler runs a command with its arguments. A returned error is fatal to
// the session; recoverable problems should be reported with SetMessage.
type Handler func(env Env, args []string) error

// Resolver supplies handlers for names the interpreter does not know.
type Resolver interface {
	Resolve(name string) (Handler, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (Handler, bool)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (Handler, bool) {
	return f(name)
}

// Interpreter maps command names to handlers.
type Interpreter struct {
	handlers  map[string]Handler
	resolvers []Resolver
}

// NewInterpreter creates an interpreter with the built-in commands.
func NewInterpreter() *Interpreter {
	in := &Interpreter{handlers: make(map[string]Handler)}
	in.Register("q", quit)
	in.Register("w", write)
	in.Register("wq", writeQuit)
	return in
}

// Register adds or replaces the handler for name.
func (in *Interpreter) Register(name string, h Handler) {
	in.handlers[name] = h
}

// AddResolver appends a fallback consulted, in order, for unknown names.
func (in *Interpreter) AddResolver(r Resolver) {
	in.resolvers = append(in.resolvers, r)
}

// Lookup finds the handler for name in the registry, then the resolvers.
func (in *Interpreter) Lookup(name string) (Handler, bool) {
	if h, ok := in.handlers[name]; ok {
		return h, true
	}
	for _, r := range in.resolvers {
		if h, ok := r.Resolve(name); ok {
			return h, true
		}
	}
	return nil, false
}

// Execute runs one command line. Empty lines do nothing.
func (in *Interpreter) Execute(env Env, line string) error {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}
	h, ok := in.Lookup(tokens[0])
	if !ok {
		env.SetMessage(MsgNotEditorCommand)
		return nil
	}
	return h(env, tokens[1:])
}

// Tokenize splits s on runs of whitespace. No token is empty.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

func quit(env Env, _ []string) error {
	env.RequestQuit()
	return nil
}

func write(env Env, args []string) error {
	_, err := writeTarget(env, args)
	return err
}

func writeQuit(env Env, args []string) error {
	ok, err := writeTarget(env, args)
	if err != nil || !ok {
		return err
	}
	env.RequestQuit()
	return nil
}

// writeTarget writes to the first argument or the associated file. It
// reports false when there was no target.
func writeTarget(env Env, args []string) (bool, error) {
	path := env.FileName()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		env.SetMessage(MsgNoFileSpecified)
		return false, nil
	}
	if env.FileName() == "" {
		env.SetFileName(path)
	}

	lines, n, err := env.WriteFile(path)
	if err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	env.SetMessage(fmt.Sprintf("%q %dL, %dB written", path, lines, n))
	return true, nil
}
