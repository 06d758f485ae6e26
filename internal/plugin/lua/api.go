package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kite/internal/input/key"
)

// installAPI registers the global kite table.
func (h *Host) installAPI() {
	L := h.state.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"command":    h.apiCommand,
		"message":    h.apiMessage,
		"line_count": h.apiLineCount,
		"line":       h.apiLine,
		"append":     h.apiAppend,
		"insert":     h.apiInsert,
		"delete":     h.apiDelete,
		"cursor":     h.apiCursor,
		"feed":       h.apiFeed,
		"filename":   h.apiFilename,
	})
	L.SetGlobal("kite", mod)
}

// kite.command(name, fn)
func (h *Host) apiCommand(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	if !validCommandName(name) {
		L.ArgError(1, ErrInvalidCommandName.Error())
		return 0
	}
	h.commands[name] = fn
	return 0
}

// kite.message(s)
func (h *Host) apiMessage(L *lua.LState) int {
	h.session.SetMessage(L.CheckString(1))
	return 0
}

// kite.line_count() -> n
func (h *Host) apiLineCount(L *lua.LState) int {
	L.Push(lua.LNumber(h.session.Document().Len()))
	return 1
}

// kite.line(n) -> string | nil
func (h *Host) apiLine(L *lua.LState) int {
	n := L.CheckInt(1)
	doc := h.session.Document()
	if n < 1 || n > doc.Len() {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(doc.LineString(n - 1)))
	return 1
}

// kite.append(s)
func (h *Host) apiAppend(L *lua.LState) int {
	h.session.Document().AppendLine(L.CheckString(1))
	h.session.SetModified()
	return 0
}

// kite.insert(n, s)
func (h *Host) apiInsert(L *lua.LState) int {
	n := L.CheckInt(1)
	s := L.CheckString(2)
	if err := h.session.Document().InsertLine(n-1, s); err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	h.session.SetModified()
	return 0
}

// kite.delete(n)
func (h *Host) apiDelete(L *lua.LState) int {
	n := L.CheckInt(1)
	doc := h.session.Document()
	if err := doc.RemoveLine(n - 1); err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	h.session.Cursor().Clamp(doc)
	h.session.SetModified()
	return 0
}

// kite.cursor() -> line, col
func (h *Host) apiCursor(L *lua.LState) int {
	cur := h.session.Cursor()
	L.Push(lua.LNumber(cur.Line + 1))
	L.Push(lua.LNumber(cur.Column + 1))
	return 2
}

// kite.feed(keys)
func (h *Host) apiFeed(L *lua.LState) int {
	keys := L.CheckString(1)
	if _, err := key.ParseSequence(keys); err != nil {
		L.RaiseError("kite.feed: %s", err.Error())
		return 0
	}
	if h.feeding >= maxFeedDepth {
		L.RaiseError("kite.feed nested too deeply")
		return 0
	}
	h.feeding++
	err := h.session.Feed(keys)
	h.feeding--
	if err != nil {
		h.fatal = err
		L.RaiseError("kite.feed: %s", err.Error())
	}
	return 0
}

// kite.filename() -> string
func (h *Host) apiFilename(L *lua.LState) int {
	L.Push(lua.LString(h.session.FileName()))
	return 1
}
