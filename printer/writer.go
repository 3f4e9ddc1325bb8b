package printer

import "github.com/teleivo/fmtcore/ir"

// writeItem is one low-level recorded write event (C3). Rendering (C7) is the only consumer of
// the recorded sequence.
type writeItem interface{ writeItem() }

type writeIndent struct{ n int }
type writeNewLine struct{}
type writeTab struct{}
type writeSpace struct{}
type writeString struct{ s string }

func (writeIndent) writeItem()  {}
func (writeNewLine) writeItem() {}
func (writeTab) writeItem()     {}
func (writeSpace) writeItem()   {}
func (writeString) writeItem()  {}

// savePoint is a cheap snapshot of the writer's scalar state plus an index into items. Restoring
// it truncates items back to that index; it never copies the items buffer itself.
type savePoint struct {
	itemsLen int

	lineNumber            int
	columnNumber          int
	lineStartIndentLevel  int
	lineStartColumnNumber int
	atLineStart           bool
	indentLevel           int
	expectNewlineNext     bool
	ignoreIndentDepth     int
	forceNoNewlinesDepth  int
}

// writer is an append-only character model (C3): it tracks indentation, line/column, and can be
// rolled back via save points cheaply because restoring only truncates the recorded item log.
type writer struct {
	items []writeItem

	indentWidth int
	useTabs     bool

	lineNumber            int
	columnNumber          int
	lineStartIndentLevel  int
	lineStartColumnNumber int
	atLineStart           bool // true until the first write on the current line flushes indent
	indentLevel           int
	expectNewlineNext     bool
	ignoreIndentDepth     int
	forceNoNewlinesDepth  int
}

func newWriter(indentWidth int, useTabs bool) *writer {
	return &writer{indentWidth: indentWidth, useTabs: useTabs, atLineStart: true}
}

func (w *writer) snapshot() savePoint {
	return savePoint{
		itemsLen:              len(w.items),
		lineNumber:            w.lineNumber,
		columnNumber:          w.columnNumber,
		lineStartIndentLevel:  w.lineStartIndentLevel,
		lineStartColumnNumber: w.lineStartColumnNumber,
		atLineStart:           w.atLineStart,
		indentLevel:           w.indentLevel,
		expectNewlineNext:     w.expectNewlineNext,
		ignoreIndentDepth:     w.ignoreIndentDepth,
		forceNoNewlinesDepth:  w.forceNoNewlinesDepth,
	}
}

func (w *writer) restore(sp savePoint) {
	w.items = w.items[:sp.itemsLen]
	w.lineNumber = sp.lineNumber
	w.columnNumber = sp.columnNumber
	w.lineStartIndentLevel = sp.lineStartIndentLevel
	w.lineStartColumnNumber = sp.lineStartColumnNumber
	w.atLineStart = sp.atLineStart
	w.indentLevel = sp.indentLevel
	w.expectNewlineNext = sp.expectNewlineNext
	w.ignoreIndentDepth = sp.ignoreIndentDepth
	w.forceNoNewlinesDepth = sp.forceNoNewlinesDepth
}

// live returns the writer's current state as an [ir.Snapshot], e.g. for Info resolution or as the
// context a condition resolver observes.
func (w *writer) live() ir.Snapshot {
	return ir.Snapshot{
		LineNumber:            w.lineNumber,
		ColumnNumber:          w.columnNumber,
		IndentLevel:           w.indentLevel,
		LineStartIndentLevel:  w.lineStartIndentLevel,
		LineStartColumnNumber: w.lineStartColumnNumber,
		IsStartOfLine:         w.columnNumber == 0,
	}
}

func (w *writer) beforeWrite() {
	if w.expectNewlineNext {
		w.expectNewlineNext = false
		w.newlineRaw()
	}
	w.flushPendingIndent()
}

func (w *writer) flushPendingIndent() {
	if !w.atLineStart {
		return
	}
	w.atLineStart = false
	if w.ignoreIndentDepth == 0 && w.indentLevel > 0 {
		w.items = append(w.items, writeIndent{n: w.indentLevel})
		w.columnNumber += w.indentLevel * w.indentWidth
	}
	w.lineStartColumnNumber = w.columnNumber
}

// writeText appends s with the given display width.
func (w *writer) writeText(s string, width int) {
	w.beforeWrite()
	w.items = append(w.items, writeString{s: s})
	w.columnNumber += width
}

func (w *writer) space() {
	w.beforeWrite()
	w.items = append(w.items, writeSpace{})
	w.columnNumber++
}

func (w *writer) tab() {
	w.beforeWrite()
	w.items = append(w.items, writeTab{})
	w.columnNumber += w.indentWidth
}

func (w *writer) singleIndent() {
	w.beforeWrite()
	w.items = append(w.items, writeIndent{n: 1})
	w.columnNumber += w.indentWidth
}

// newlineRaw appends a newline without consulting expect_newline_next; used internally to avoid
// recursing when flushing a pending expected newline.
func (w *writer) newlineRaw() {
	w.items = append(w.items, writeNewLine{})
	w.lineNumber++
	w.columnNumber = 0
	w.lineStartIndentLevel = w.indentLevel
	w.lineStartColumnNumber = 0
	w.atLineStart = true
}

func (w *writer) newline() {
	if w.expectNewlineNext {
		w.expectNewlineNext = false
	}
	w.newlineRaw()
}

func (w *writer) markExpectNewline() {
	w.expectNewlineNext = true
}

func (w *writer) startIndent() {
	w.indentLevel++
}

func (w *writer) finishIndent() error {
	if w.indentLevel == 0 {
		return &InvariantError{Msg: "FinishIndent with no matching StartIndent (indent level underflow)"}
	}
	w.indentLevel--
	return nil
}

func (w *writer) startIgnoringIndent() {
	w.ignoreIndentDepth++
}

func (w *writer) finishIgnoringIndent() error {
	if w.ignoreIndentDepth == 0 {
		return &InvariantError{Msg: "FinishIgnoringIndent with no matching StartIgnoringIndent"}
	}
	w.ignoreIndentDepth--
	return nil
}

func (w *writer) startForceNoNewLines() {
	w.forceNoNewlinesDepth++
}

func (w *writer) finishForceNoNewLines() error {
	if w.forceNoNewlinesDepth == 0 {
		return &InvariantError{Msg: "FinishForceNoNewLines with no matching StartForceNoNewLines"}
	}
	w.forceNoNewlinesDepth--
	return nil
}
