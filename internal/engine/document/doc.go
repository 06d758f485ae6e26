// Package document holds the editable content of a session as an ordered
// list of lines.
//
// A Document always has at least one line. Lines are text.Text values owned
// by the document; pointers returned by Line stay valid until the next call
// that adds or removes lines.
//
// Line and column arguments are zero based. Columns are byte offsets.
//
//	doc := document.FromLines([]string{"hello world"})
//	_ = doc.SplitLine(0, 5)   // "hello", " world"
//	_ = doc.MergeLines(1)     // "hello world"
package document
