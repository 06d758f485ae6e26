package mode

import "github.com/dshills/kite/internal/input/key"

// promptWidth is the screen space the command line needs besides its
// text: the ':' prompt and the cursor cell.
const promptWidth = 2

// CommandLineMode implements typing a ':' command.
type CommandLineMode struct{}

// NewCommandLineMode creates a new command-line mode instance.
func NewCommandLineMode() *CommandLineMode {
	return &CommandLineMode{}
}

// ID returns the mode identifier.
func (m *CommandLineMode) ID() ID { return ModeCommandLine }

// Status returns the status bar text. The command line itself replaces
// the status bar in this mode.
func (m *CommandLineMode) Status() string { return "COMMAND" }

// Enter starts with an empty command line.
func (m *CommandLineMode) Enter(ed Editor) {
	ed.CommandLine().Reset()
}

// Exit is called when leaving command-line mode.
func (m *CommandLineMode) Exit(Editor) {}

// HandleKey interprets one key while a command is being typed.
func (m *CommandLineMode) HandleKey(ed Editor, ev key.Event) error {
	line := ed.CommandLine()

	switch ev.Key {
	case key.KeyLeft:
		line.MoveLeft()
	case key.KeyRight:
		line.MoveRight()
	case key.KeyDelete:
		line.Delete()
	case key.KeyBackspace:
		if !line.Backspace() {
			ed.SwitchMode(ModeNormal)
		}
	case key.KeyEnter:
		// Leave first so the command's own status message survives.
		cmd := line.String()
		ed.SwitchMode(ModeNormal)
		return ed.ExecuteCommand(cmd)
	default:
		if ev.IsPrintable() {
			line.Insert(ev.Byte, ed.Cols()-promptWidth)
		}
	}
	return nil
}
