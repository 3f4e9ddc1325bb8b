package printer_test

import (
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/fmtcore/ir"
	"github.com/teleivo/fmtcore/printer"
)

// sharedArrayLiteral is [arrayLiteral] built once and frozen into a [ir.SharedSubtree] so multiple
// roots can reference the same chain without duplicating it.
func sharedArrayLiteral(elems []string) *ir.SharedSubtree {
	items := ir.NewItems()
	items.PushText("[")
	items.PushSignal(ir.StartIndent)
	items.PushSignal(ir.PossibleNewLine)
	for i, e := range elems {
		if i > 0 {
			items.PushText(",")
			items.PushSignal(ir.SpaceOrNewLine)
		}
		items.PushText(e)
	}
	items.PushSignal(ir.FinishIndent)
	items.PushSignal(ir.PossibleNewLine)
	items.PushText("]")
	return items.IntoSharedSubtree()
}

// arrayLiteral builds `[e1, e2, ...]` IR the way a language printer would: a group that tries to
// stay on one line, falling back to one element per line with a trailing comma-free last element.
func arrayLiteral(elems []string) *ir.Item {
	items := ir.NewItems()
	items.PushText("[")
	items.PushSignal(ir.StartIndent)
	items.PushSignal(ir.PossibleNewLine)
	for i, e := range elems {
		if i > 0 {
			items.PushText(",")
			items.PushSignal(ir.SpaceOrNewLine)
		}
		items.PushText(e)
	}
	items.PushSignal(ir.FinishIndent)
	items.PushSignal(ir.PossibleNewLine)
	items.PushText("]")
	return items.Head()
}

func TestFormatFitsOnOneLine(t *testing.T) {
	root := arrayLiteral([]string{"test", "other"})

	got, err := printer.Format(root, printer.Options{IndentWidth: 2, MaxWidth: 40})

	assert.NoError(t, err)
	assert.Equal(t, "[test, other]", got)
}

func TestFormatMultiLineBecauseOfTotalWidth(t *testing.T) {
	root := arrayLiteral([]string{"test", "other", "asdfasdfasdfasdfasdfasdfasdf"})

	got, err := printer.Format(root, printer.Options{IndentWidth: 2, MaxWidth: 40})

	assert.NoError(t, err)
	assert.Equal(t, "[\n  test,\n  other,\n  asdfasdfasdfasdfasdfasdfasdf\n]", got)
}

func TestFormatSingleElementOverWidthHasNoLegalBreak(t *testing.T) {
	root := arrayLiteral([]string{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"})

	got, err := printer.Format(root, printer.Options{IndentWidth: 2, MaxWidth: 40})

	assert.NoError(t, err)
	assert.Equal(t, "[aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa]", got)
}

func TestFormatRespectsUseTabs(t *testing.T) {
	root := arrayLiteral([]string{"test", "other", "asdfasdfasdfasdfasdfasdfasdf"})

	got, err := printer.Format(root, printer.Options{IndentWidth: 1, MaxWidth: 40, UseTabs: true})

	assert.NoError(t, err)
	assert.Equal(t, "[\n\ttest,\n\tother,\n\tasdfasdfasdfasdfasdfasdfasdf\n]", got)
}

func TestFormatCarriageReturnNewLine(t *testing.T) {
	root := arrayLiteral([]string{"test", "other", "asdfasdfasdfasdfasdfasdfasdf"})

	got, err := printer.Format(root, printer.Options{IndentWidth: 2, MaxWidth: 40, NewLineText: "\r\n"})

	assert.NoError(t, err)
	assert.Equal(t, "[\r\n  test,\r\n  other,\r\n  asdfasdfasdfasdfasdfasdfasdf\r\n]", got)
}

// TestFormatConditionReevaluatesWhenDependencyResolvesLater builds an IR where a condition's
// resolver depends on an info that appears after the condition in the chain. On the first pass
// the info has no resolution yet, so the resolver returns nil and the false branch is taken; once
// the info resolves the printer must rewind and flip to the true branch (spec scenario 5).
func TestFormatConditionReevaluatesWhenDependencyResolvesLater(t *testing.T) {
	gen := ir.NewGenerator()
	longInfo := ir.NewInfo(gen, ir.InfoColumnNumber, "afterLongText")

	cond := ir.NewCondition(gen, "isLong", func(ctx ir.ResolverContext) *bool {
		snap, ok := ctx.Info(longInfo.ID)
		if !ok {
			return nil
		}
		return ir.Bool(snap.ColumnNumber > 10)
	})
	cond.DependentInfos = []ir.InfoID{longInfo.ID}
	cond.True = ir.NewItems().PushText("[long]").Head()
	cond.False = ir.NewItems().PushText("[short]").Head()

	items := ir.NewItems()
	items.PushCondition(cond)
	items.PushText("0123456789abcdef")
	items.PushInfo(longInfo)

	got, err := printer.Format(items.Head(), printer.Options{IndentWidth: 2, MaxWidth: 80})

	assert.NoError(t, err)
	assert.Equal(t, "[long]0123456789abcdef", got)
}

func TestFormatIndentBalanceViolationErrors(t *testing.T) {
	items := ir.NewItems()
	items.PushSignal(ir.StartIndent)
	items.PushText("a")

	_, err := printer.Format(items.Head(), printer.Options{})

	assert.Error(t, err)
}

func TestFormatIgnoredIndentPreservesVerbatimText(t *testing.T) {
	items := ir.NewItems()
	items.PushText("a")
	items.PushSignal(ir.StartIndent)
	items.PushSignal(ir.StartIgnoringIndent)
	items.PushSignal(ir.NewLine)
	items.PushText("  raw line two")
	items.PushSignal(ir.FinishIgnoringIndent)
	items.PushSignal(ir.FinishIndent)

	got, err := printer.Format(items.Head(), printer.Options{IndentWidth: 2, MaxWidth: 80})

	assert.NoError(t, err)
	assert.Equal(t, "a\n  raw line two", got)
}

// TestFormatAnchorInvalidatesInfoOnColumnDrift builds IR where an info resolves once, text is then
// written that moves the column away from the recorded snapshot, and an anchor over that info is
// reached before a later condition reads it (C6 step 4). The anchor must clear the stale
// resolution so the condition sees it as unresolved, rather than reusing the drifted snapshot.
func TestFormatAnchorInvalidatesInfoOnColumnDrift(t *testing.T) {
	gen := ir.NewGenerator()
	marker := ir.NewInfo(gen, ir.InfoColumnNumber, "marker")
	anchor := ir.NewAnchor(gen, marker)

	sawMarker := ir.NewCondition(gen, "sawMarker", func(ctx ir.ResolverContext) *bool {
		_, ok := ctx.Info(marker.ID)
		return ir.Bool(ok)
	})
	sawMarker.True = ir.NewItems().PushText("[present]").Head()
	sawMarker.False = ir.NewItems().PushText("[missing]").Head()

	items := ir.NewItems()
	items.PushInfo(marker)
	items.PushText("1234567890")
	items.PushAnchor(anchor)
	items.PushCondition(sawMarker)

	got, err := printer.Format(items.Head(), printer.Options{IndentWidth: 2, MaxWidth: 80})

	assert.NoError(t, err)
	assert.Equal(t, "1234567890[missing]", got)
}

// TestFormatAnchorLeavesInfoResolvedWithoutColumnDrift is the control for
// TestFormatAnchorInvalidatesInfoOnColumnDrift: the same shape, but the anchor is reached at the
// same column the info resolved at (no text in between), so no invalidation should happen.
func TestFormatAnchorLeavesInfoResolvedWithoutColumnDrift(t *testing.T) {
	gen := ir.NewGenerator()
	marker := ir.NewInfo(gen, ir.InfoColumnNumber, "marker")
	anchor := ir.NewAnchor(gen, marker)

	sawMarker := ir.NewCondition(gen, "sawMarker", func(ctx ir.ResolverContext) *bool {
		_, ok := ctx.Info(marker.ID)
		return ir.Bool(ok)
	})
	sawMarker.True = ir.NewItems().PushText("[present]").Head()
	sawMarker.False = ir.NewItems().PushText("[missing]").Head()

	items := ir.NewItems()
	items.PushInfo(marker)
	items.PushAnchor(anchor)
	items.PushCondition(sawMarker)

	got, err := printer.Format(items.Head(), printer.Options{IndentWidth: 2, MaxWidth: 80})

	assert.NoError(t, err)
	assert.Equal(t, "[present]", got)
}

// TestFormatSharedSubtreeConsistentAcrossConditionBranches exercises the shared-subtree
// consistency property (spec testable property 7): the same SharedSubtree referenced from a
// condition's True branch and from its False branch must produce the same output for the subtree
// itself, independent of which branch reached it.
func TestFormatSharedSubtreeConsistentAcrossConditionBranches(t *testing.T) {
	shared := sharedArrayLiteral([]string{"test", "other", "asdfasdfasdfasdfasdfasdfasdf"})
	opts := printer.Options{IndentWidth: 2, MaxWidth: 40}

	build := func(takeTrue bool) *ir.Item {
		gen := ir.NewGenerator()
		cond := ir.NewCondition(gen, "branch", func(ir.ResolverContext) *bool { return ir.Bool(takeTrue) })
		cond.True = ir.NewItems().PushText("T:").PushSharedSubtree(shared).Head()
		cond.False = ir.NewItems().PushText("F:").PushSharedSubtree(shared).Head()
		return ir.NewItems().PushCondition(cond).Head()
	}

	gotTrue, err := printer.Format(build(true), opts)
	assert.NoError(t, err)
	gotFalse, err := printer.Format(build(false), opts)
	assert.NoError(t, err)

	wantSuffix := "[\n  test,\n  other,\n  asdfasdfasdfasdfasdfasdfasdf\n]"
	assert.Equal(t, wantSuffix, strings.TrimPrefix(gotTrue, "T:"))
	assert.Equal(t, wantSuffix, strings.TrimPrefix(gotFalse, "F:"))
}
