// Package command implements the colon command line: the editable line
// typed after ':' and the interpreter that runs it.
//
// Built-in commands:
//
//   - q: quit
//   - w [path]: write the document to path, or to the associated file
//   - wq [path]: write, then quit
//
// Names that are not built in are offered to registered Resolvers, which
// lets scripted extensions add commands. Anything left over produces the
// "Not an editor command" status message.
package command
