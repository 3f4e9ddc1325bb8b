// Package printer implements the IR printer: the engine that consumes the print-item chain built
// with package [github.com/teleivo/fmtcore/ir] and emits formatted text, choosing line breaks,
// indentation, and alternative layouts so the output respects width limits and structural
// constraints declared by the IR.
//
// Collaborators only ever see [Format]. Everything else in this package is run-local state
// dropped once Format returns.
package printer

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/teleivo/fmtcore/ir"
)

// Format traverses root and returns the formatted text. A run is single-threaded and CPU-bound:
// there are no external cancellation points, and all mutable state is owned by the run and
// discarded on return. Running Format concurrently for independent roots is safe.
func Format(root *ir.Item, opts Options) (string, error) {
	return FormatWithLogger(root, opts, nil)
}

// FormatWithLogger is [Format] with an explicit diagnostic sink for the re-evaluation protector's
// one-time-per-condition warning. A nil logger uses [slog.Default].
func FormatWithLogger(root *ir.Item, opts Options, logger *slog.Logger) (result string, err error) {
	opts = opts.withDefaults()
	p := newPrinter(opts, logger)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("printer: resolver panic: %v", r)
		}
	}()

	if err := p.run(root); err != nil {
		return "", err
	}
	if p.w.indentLevel != 0 || p.w.ignoreIndentDepth != 0 {
		return "", &InvariantError{Msg: fmt.Sprintf(
			"run ended with indent_level=%d ignore_indent_depth=%d, want both 0",
			p.w.indentLevel, p.w.ignoreIndentDepth)}
	}

	return render(p.w.items, opts), nil
}

// savePointEntry is a save point the printer might rewind to on overflow: one per outstanding
// PossibleNewLine, SpaceOrNewLine, or StartNewLineGroup that is still in scope.
type savePointEntry struct {
	sp          savePoint
	resumeItem  *ir.Item
	resumeStack []*ir.Item
}

type printer struct {
	opts   Options
	w      *writer
	tables *tables
	reeval *reevalProtector

	// pendingByInfo maps an info id to the conditions whose resolver returned "cannot decide yet"
	// and named that info as a dependency.
	pendingByInfo map[ir.InfoID][]ir.ConditionID

	// activeSavePoints is ordered oldest (index 0) to newest. Overflow always rewinds to the
	// oldest entry and discards the rest, since everything after it is, by construction, nested
	// inside it.
	activeSavePoints []savePointEntry
	// groupMarks holds, for each currently open StartNewLineGroup, the index into
	// activeSavePoints holding its marker.
	groupMarks []int
}

func newPrinter(opts Options, logger *slog.Logger) *printer {
	return &printer{
		opts:          opts,
		w:             newWriter(opts.IndentWidth, opts.UseTabs),
		tables:        newTables(),
		reeval:        newReevalProtector(logger),
		pendingByInfo: make(map[ir.InfoID][]ir.ConditionID),
	}
}

func (p *printer) clearActiveSavePoints() {
	p.activeSavePoints = nil
	p.groupMarks = nil
}

func (p *printer) measureWidth(item *ir.Item) int {
	if item.Kind == ir.KindRuntimeWidthText && item.MeasureWidth != nil {
		return item.MeasureWidth(item.Text)
	}
	return utf8.RuneCountInString(item.Text)
}

// run is the printer loop (C6): an iterative stack machine walking the IR chain. current is the
// node under consideration; stack holds the items to resume at once the current chain runs out
// (pushed when descending into a condition branch or a shared subtree).
func (p *printer) run(root *ir.Item) error {
	current := root
	var stack []*ir.Item

	for {
		if current == nil {
			if len(stack) == 0 {
				return nil
			}
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		next := current.Next

		switch current.Kind {
		case ir.KindText, ir.KindRuntimeWidthText:
			width := p.measureWidth(current)
			if rewoundItem, rewoundStack, ok := p.tryOverflowRewind(width); ok {
				current, stack = rewoundItem, rewoundStack
				continue
			}
			p.w.writeText(current.Text, width)

		case ir.KindSignal:
			if err := p.handleSignal(current, &stack); err != nil {
				return err
			}

		case ir.KindInfo:
			snap := p.w.live()
			p.tables.setInfo(current.Info.ID, snap)
			if item, newStack, ok := p.notifyInfoResolved(current.Info.ID); ok {
				current, stack = item, newStack
				continue
			}

		case ir.KindAnchor:
			if item, newStack, ok := p.handleAnchor(current.Anchor); ok {
				current, stack = item, newStack
				continue
			}

		case ir.KindCondition:
			stack = append(stack, next)
			current = p.enterCondition(current.Condition, next, stack[:len(stack)-1])
			continue

		case ir.KindConditionReevaluation:
			if item, newStack, ok := p.reevaluateMarker(current.Reevaluation); ok {
				current, stack = item, newStack
				continue
			}

		case ir.KindSharedSubtree:
			stack = append(stack, next)
			current = current.Shared.Head
			continue
		}

		current = next
	}
}

// tryOverflowRewind implements the overflow rule (C6 "Overflow handling"): if writing width more
// columns would exceed the line-width budget and an active save point exists, rewind to the
// oldest one and emit a newline there instead of writing.
func (p *printer) tryOverflowRewind(width int) (*ir.Item, []*ir.Item, bool) {
	if p.w.forceNoNewlinesDepth > 0 {
		return nil, nil, false
	}
	if p.w.columnNumber+width <= p.opts.MaxWidth {
		return nil, nil, false
	}
	if len(p.activeSavePoints) == 0 {
		return nil, nil, false
	}

	entry := p.activeSavePoints[0]
	p.w.restore(entry.sp)
	p.w.newline()
	p.clearActiveSavePoints()
	return entry.resumeItem, entry.resumeStack, true
}

func (p *printer) handleSignal(current *ir.Item, stack *[]*ir.Item) error {
	sig := current.Signal
	switch sig {
	case ir.NewLine:
		p.w.newline()
	case ir.Tab:
		p.w.tab()
	case ir.Space:
		p.w.space()
	case ir.SingleIndent:
		p.w.singleIndent()
	case ir.PossibleNewLine:
		p.pushSavePoint(current.Next, *stack)
	case ir.SpaceOrNewLine:
		p.pushSavePoint(current.Next, *stack)
		p.w.space()
	case ir.ExpectNewLine:
		p.w.markExpectNewline()
	case ir.StartIndent:
		p.w.startIndent()
	case ir.FinishIndent:
		return p.w.finishIndent()
	case ir.StartNewLineGroup:
		p.pushSavePoint(current.Next, *stack)
		p.groupMarks = append(p.groupMarks, len(p.activeSavePoints)-1)
	case ir.FinishNewLineGroup:
		p.popNewLineGroup()
	case ir.StartIgnoringIndent:
		p.w.startIgnoringIndent()
	case ir.FinishIgnoringIndent:
		return p.w.finishIgnoringIndent()
	case ir.StartForceNoNewLines:
		p.w.startForceNoNewLines()
	case ir.FinishForceNoNewLines:
		return p.w.finishForceNoNewLines()
	}
	return nil
}

func (p *printer) pushSavePoint(resumeItem *ir.Item, stack []*ir.Item) {
	p.activeSavePoints = append(p.activeSavePoints, savePointEntry{
		sp:          p.w.snapshot(),
		resumeItem:  resumeItem,
		resumeStack: append([]*ir.Item(nil), stack...),
	})
}

// popNewLineGroup closes the innermost still-open newline group. If its save point was already
// discarded by an intervening overflow rewind, there is nothing left to remove.
func (p *printer) popNewLineGroup() {
	if len(p.groupMarks) == 0 {
		return
	}
	idx := p.groupMarks[len(p.groupMarks)-1]
	p.groupMarks = p.groupMarks[:len(p.groupMarks)-1]
	if idx < len(p.activeSavePoints) {
		p.activeSavePoints = append(p.activeSavePoints[:idx], p.activeSavePoints[idx+1:]...)
	}
}

// handleAnchor implements C6 step 4: compare the anchor's current column with the value recorded
// for its target info; on drift, invalidate that resolution and notify dependents.
func (p *printer) handleAnchor(a *ir.Anchor) (*ir.Item, []*ir.Item, bool) {
	prev, ok := p.tables.getInfo(a.Target.ID)
	if !ok || prev.ColumnNumber == p.w.columnNumber {
		return nil, nil, false
	}
	p.tables.clearInfo(a.Target.ID)
	return p.notifyInfoResolved(a.Target.ID)
}
