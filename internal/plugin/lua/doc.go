// Package lua runs user scripts that extend kite with colon commands.
//
// Scripts run in a sandboxed gopher-lua state: only the base, table,
// string and math libraries are opened, the chunk loaders (dofile,
// loadfile, load, loadstring, require) are removed, and every call is
// bounded by an execution timeout. print writes to the kite log.
//
// Scripts reach the editor through the global kite table:
//
//	kite.command(name, fn)  register :name; fn receives a table of args
//	kite.message(s)         set the status message
//	kite.line_count()       number of lines
//	kite.line(n)            text of line n (1-based), nil when out of range
//	kite.append(s)          append a line
//	kite.insert(n, s)       insert a line before line n (1-based)
//	kite.delete(n)          delete line n (1-based)
//	kite.cursor()           cursor line and column (1-based)
//	kite.feed(keys)         handle keys written as a key specification
//	kite.filename()         associated file name, "" for none
//
// Example init script:
//
//	kite.command("stamp", function(args)
//	  kite.append("-- " .. (args[1] or "stamp"))
//	  kite.message("stamped")
//	end)
//
// Host implements command.Resolver, so registered commands are found
// after the built-ins. Lua errors never end the session; they become
// status messages.
package lua
