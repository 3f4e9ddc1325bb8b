// Package ir defines the intermediate representation consumed by the [printer] package: a
// singly-linked chain of print items built by language-specific collaborators and handed to
// printer.Format. The package owns id allocation (C1) and the print-item model (C2); it performs
// no layout decisions and no text rendering itself.
package ir

import "fmt"

// InfoID, ConditionID, AnchorID and ReevalID are dense, per-run identifiers. They are only
// meaningful together with the [Generator] that minted them.
type (
	InfoID      uint32
	ConditionID uint32
	AnchorID    uint32
	ReevalID    uint32
)

// Generator mints monotonically increasing ids for one format run. It is not safe for concurrent
// use; each run owns its own Generator.
type Generator struct {
	nextInfo      uint32
	nextCondition uint32
	nextAnchor    uint32
	nextReeval    uint32
}

// NewGenerator returns a Generator with all counters reset to zero, ready for a new format run.
func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) NextInfoID() InfoID {
	id := InfoID(g.nextInfo)
	g.nextInfo++
	return id
}

func (g *Generator) NextConditionID() ConditionID {
	id := ConditionID(g.nextCondition)
	g.nextCondition++
	return id
}

func (g *Generator) NextAnchorID() AnchorID {
	id := AnchorID(g.nextAnchor)
	g.nextAnchor++
	return id
}

func (g *Generator) NextReevalID() ReevalID {
	id := ReevalID(g.nextReeval)
	g.nextReeval++
	return id
}

// Kind identifies the variant of a print [Item].
type Kind int

const (
	KindText Kind = iota
	KindRuntimeWidthText
	KindSignal
	KindInfo
	KindAnchor
	KindCondition
	KindConditionReevaluation
	KindSharedSubtree
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindRuntimeWidthText:
		return "RuntimeWidthText"
	case KindSignal:
		return "Signal"
	case KindInfo:
		return "Info"
	case KindAnchor:
		return "Anchor"
	case KindCondition:
		return "Condition"
	case KindConditionReevaluation:
		return "ConditionReevaluation"
	case KindSharedSubtree:
		return "SharedSubtree"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Signal is a layout intention carried by a [KindSignal] item. Semantics are defined by the
// printer loop (see printer.Format), not by this package.
type Signal int

const (
	NewLine Signal = iota
	Tab
	Space
	PossibleNewLine
	SpaceOrNewLine
	ExpectNewLine
	SingleIndent
	StartIndent
	FinishIndent
	StartNewLineGroup
	FinishNewLineGroup
	StartIgnoringIndent
	FinishIgnoringIndent
	StartForceNoNewLines
	FinishForceNoNewLines
)

func (s Signal) String() string {
	switch s {
	case NewLine:
		return "NewLine"
	case Tab:
		return "Tab"
	case Space:
		return "Space"
	case PossibleNewLine:
		return "PossibleNewLine"
	case SpaceOrNewLine:
		return "SpaceOrNewLine"
	case ExpectNewLine:
		return "ExpectNewLine"
	case SingleIndent:
		return "SingleIndent"
	case StartIndent:
		return "StartIndent"
	case FinishIndent:
		return "FinishIndent"
	case StartNewLineGroup:
		return "StartNewLineGroup"
	case FinishNewLineGroup:
		return "FinishNewLineGroup"
	case StartIgnoringIndent:
		return "StartIgnoringIndent"
	case FinishIgnoringIndent:
		return "FinishIgnoringIndent"
	case StartForceNoNewLines:
		return "StartForceNoNewLines"
	case FinishForceNoNewLines:
		return "FinishForceNoNewLines"
	default:
		return fmt.Sprintf("Signal(%d)", int(s))
	}
}

// InfoKind selects which field of the writer snapshot an [Info] exposes. All kinds share the same
// underlying [Snapshot]; the kind only documents intent for readers of the IR.
type InfoKind int

const (
	InfoGeneral InfoKind = iota
	InfoLineNumber
	InfoColumnNumber
	InfoIndentLevel
	InfoLineStartIndentLevel
	InfoLineStartColumnNumber
	InfoIsStartOfLine
)

// Snapshot is the writer state captured when the printer passes an [Info].
type Snapshot struct {
	LineNumber             int
	ColumnNumber           int
	IndentLevel            int
	LineStartIndentLevel   int
	LineStartColumnNumber  int
	IsStartOfLine          bool
}

// Info is a named, uniquely identified placeholder resolved to a [Snapshot] the first (or latest)
// time the printer passes over it.
type Info struct {
	ID   InfoID
	Kind InfoKind
	Name string
}

// NewInfo allocates a fresh Info from g.
func NewInfo(g *Generator, kind InfoKind, name string) *Info {
	return &Info{ID: g.NextInfoID(), Kind: kind, Name: name}
}

// Anchor invalidates Target's resolution whenever the printer passes over the anchor at a column
// different from the one recorded last time Target resolved.
type Anchor struct {
	ID     AnchorID
	Target *Info
}

// NewAnchor allocates a fresh Anchor over target.
func NewAnchor(g *Generator, target *Info) *Anchor {
	return &Anchor{ID: g.NextAnchorID(), Target: target}
}

// ResolverContext is the read-only view a [Resolver] observes when asked to decide a [Condition].
type ResolverContext interface {
	// Writer returns the live writer state at the point the condition was reached.
	Writer() Snapshot
	// Info looks up a previously resolved info by id.
	Info(id InfoID) (Snapshot, bool)
	// Condition looks up a previously resolved condition by id.
	Condition(id ConditionID) (bool, bool)
}

// Resolver decides a [Condition]'s branch. It must behave as a pure function of ctx: the printer
// may invoke it repeatedly (including re-evaluation after a dependency changes) and treats a
// panic as a fatal IR error. A nil *bool return means "cannot decide yet".
type Resolver func(ctx ResolverContext) *bool

// Bool is a convenience helper returning a *bool for use as a Resolver's return value.
func Bool(b bool) *bool { return &b }

// Condition is a branching IR node. Exactly one of True or False is followed per pass, chosen by
// Resolve.
type Condition struct {
	ID      ConditionID
	Name    string
	Resolve Resolver

	// True and False are the head items of the two branch chains. Either may be nil, meaning
	// "take no action" for that branch.
	True, False *Item

	// IsStored forces the resolved value to be recorded in the run's resolution table even if no
	// ConditionReevaluation or dependent info currently observes it.
	IsStored bool

	// DependentInfos lists infos whose resolution should trigger re-evaluation of this condition.
	DependentInfos []InfoID
}

// NewCondition allocates a fresh Condition from g.
func NewCondition(g *Generator, name string, resolve Resolver) *Condition {
	return &Condition{ID: g.NextConditionID(), Name: name, Resolve: resolve}
}

// ConditionReevaluation forces re-evaluation of Condition's result when encountered, rolling back
// to re-enter the branch if the new result differs from the one previously taken.
type ConditionReevaluation struct {
	ID        ReevalID
	Condition ConditionID
}

// NewConditionReevaluation allocates a marker that re-evaluates cond.
func NewConditionReevaluation(g *Generator, cond *Condition) *ConditionReevaluation {
	return &ConditionReevaluation{ID: g.NextReevalID(), Condition: cond.ID}
}

// SharedSubtree is a reference-counted pointer to another IR chain so it can be reused from
// multiple positions without duplicating nodes. SharedSubtree values are immutable once built and
// safe to traverse repeatedly, including concurrently across independent format runs.
type SharedSubtree struct {
	Head *Item
}

// RuntimeWidth computes the display width of a runtime-width text's content. It is supplied by
// the collaborator that knows how to measure the content (e.g. accounting for wide runes).
type RuntimeWidth func(s string) int

// Item is one node of the singly-linked IR chain. Its meaning is determined by Kind; only the
// fields relevant to that Kind are populated.
type Item struct {
	Kind Kind

	Text         string
	MeasureWidth RuntimeWidth // set only on KindRuntimeWidthText

	Signal Signal

	Info   *Info
	Anchor *Anchor

	Condition    *Condition
	Reevaluation *ConditionReevaluation
	Shared       *SharedSubtree

	Next *Item
}

// Items is a builder that appends nodes to a chain in order. The zero value is an empty chain.
// Methods return the receiver to allow call chaining in the style of a fluent API.
type Items struct {
	head, tail *Item
}

// NewItems returns an empty chain builder.
func NewItems() *Items {
	return &Items{}
}

func (b *Items) append(item *Item) *Items {
	if b.head == nil {
		b.head = item
	} else {
		b.tail.Next = item
	}
	b.tail = item
	return b
}

// PushText appends a fixed-width text node measured by its rune count.
func (b *Items) PushText(s string) *Items {
	return b.append(&Item{Kind: KindText, Text: s})
}

// PushRuntimeWidthText appends a text node whose display width is computed by width at emission
// time rather than from its rune count.
func (b *Items) PushRuntimeWidthText(s string, width RuntimeWidth) *Items {
	return b.append(&Item{Kind: KindRuntimeWidthText, Text: s, MeasureWidth: width})
}

// PushSignal appends a layout-intention marker.
func (b *Items) PushSignal(s Signal) *Items {
	return b.append(&Item{Kind: KindSignal, Signal: s})
}

// PushInfo appends a placeholder resolved when the printer passes over it.
func (b *Items) PushInfo(info *Info) *Items {
	return b.append(&Item{Kind: KindInfo, Info: info})
}

// PushAnchor appends a back-reference that invalidates its target info on column drift.
func (b *Items) PushAnchor(a *Anchor) *Items {
	return b.append(&Item{Kind: KindAnchor, Anchor: a})
}

// PushCondition appends a branching node.
func (b *Items) PushCondition(c *Condition) *Items {
	return b.append(&Item{Kind: KindCondition, Condition: c})
}

// PushReevaluation appends a marker forcing re-evaluation of a previously pushed condition.
func (b *Items) PushReevaluation(r *ConditionReevaluation) *Items {
	return b.append(&Item{Kind: KindConditionReevaluation, Reevaluation: r})
}

// PushSharedSubtree appends a reference to a shared chain.
func (b *Items) PushSharedSubtree(s *SharedSubtree) *Items {
	return b.append(&Item{Kind: KindSharedSubtree, Shared: s})
}

// Extend appends a copy of other's chain handle onto b. other is consumed: it must not be used
// after calling Extend.
func (b *Items) Extend(other *Items) *Items {
	if other == nil || other.head == nil {
		return b
	}
	if b.head == nil {
		b.head = other.head
	} else {
		b.tail.Next = other.head
	}
	b.tail = other.tail
	return b
}

// IntoSharedSubtree converts the chain built so far into an immutable [SharedSubtree] usable from
// multiple positions. b must not be mutated afterwards.
func (b *Items) IntoSharedSubtree() *SharedSubtree {
	return &SharedSubtree{Head: b.head}
}

// Head returns the first item of the chain, or nil if empty.
func (b *Items) Head() *Item {
	return b.head
}
