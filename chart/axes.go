package chart

import (
	"github.com/midbel/chartkit/style"
)

const (
	primaryTextAxisID    uint32 = 500000001
	primaryValueAxisID   uint32 = 500000002
	depthAxisID          uint32 = 500000003
	secondaryTextAxisID  uint32 = 500000004
	secondaryValueAxisID uint32 = 500000005
)

// Orientation tells on which side the text axis of a chart sits: bottom for
// vertical charts (column, line...), left for horizontal ones (bar).
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) textPosition() AxisPosition {
	if o == Horizontal {
		return PositionLeft
	}
	return PositionBottom
}

func (o Orientation) valuePosition() AxisPosition {
	if o == Horizontal {
		return PositionBottom
	}
	return PositionLeft
}

type depthMode int

const (
	depthNone depthMode = iota
	depthHidden
	depthShown
)

type AxisPair struct {
	Text  *Axis
	Value *Axis
}

func newPair(textID, valueID uint32, kind AxisKind, orient Orientation, theme style.Theme) *AxisPair {
	p := AxisPair{
		Text:  newAxis(textID, valueID, kind, orient.textPosition(), theme),
		Value: newAxis(valueID, textID, AxisValue, orient.valuePosition(), theme),
	}
	if kind == AxisValue {
		p.Value.CrossBetween = "midCat"
	}
	return &p
}

// AxisHistory records what happened to the axes across chart type changes.
type AxisHistory struct {
	ShownSecondaryText bool
}

// ShowSecondaryText records that the secondary text axis has been shown.
func (h AxisHistory) ShowSecondaryText() AxisHistory {
	h.ShownSecondaryText = true
	return h
}

func (h AxisHistory) secondaryTextPosition(orient Orientation) AxisPosition {
	pos := orient.textPosition()
	if h.ShownSecondaryText {
		pos = pos.Opposite()
	}
	return pos
}

// Axes coordinates the axis pairs of a plot area. The secondary pair only
// exists when the primary one does.
type Axes struct {
	Orientation Orientation
	Primary     *AxisPair
	Secondary   *AxisPair
	Depth       *Axis
	History     AxisHistory
}

func (a *Axes) HasPrimary() bool {
	return a.Primary != nil
}

func (a *Axes) HasSecondary() bool {
	return a.Secondary != nil
}

// Reset recreates the primary pair (and the depth axis when requested)
// after a new chart type is selected. The history is kept.
func (a *Axes) Reset(orient Orientation, kind AxisKind, depth depthMode, theme style.Theme) {
	a.Orientation = orient
	a.Primary = newPair(primaryTextAxisID, primaryValueAxisID, kind, orient, theme)
	a.Secondary = nil
	a.Depth = nil
	if depth != depthNone {
		a.Depth = newAxis(depthAxisID, primaryValueAxisID, AxisSeries, PositionBottom, theme)
		a.Depth.Delete = depth == depthHidden
	}
}

// Resolve gives which pair a series plotted on the requested axes ends up
// on. Primary axes are created first whatever the request, secondary ones
// only once primary axes exist.
func (a *Axes) Resolve(secondary bool, kind AxisKind, theme style.Theme) bool {
	if !a.HasPrimary() {
		a.Primary = newPair(primaryTextAxisID, primaryValueAxisID, kind, a.Orientation, theme)
		return false
	}
	if !secondary {
		return false
	}
	if !a.HasSecondary() {
		a.Secondary = a.createSecondary(kind, theme)
	}
	return true
}

func (a *Axes) createSecondary(kind AxisKind, theme style.Theme) *AxisPair {
	p := newPair(secondaryTextAxisID, secondaryValueAxisID, kind, a.Orientation, theme)
	p.Text.Delete = true
	p.Text.MajorTick = TickNone
	p.Text.Position = a.History.secondaryTextPosition(a.Orientation)
	p.Text.SetOtherAxisCrosses(CrossesMax)
	p.Value.MajorGridlines = false
	return p
}

func (a *Axes) ShowSecondaryText() {
	if !a.HasSecondary() {
		return
	}
	a.History = a.History.ShowSecondaryText()
	a.Secondary.Text.Delete = false
	a.Secondary.Text.MajorTick = TickOutside
	a.Secondary.Text.Position = a.History.secondaryTextPosition(a.Orientation)
}

func (a *Axes) HideSecondaryText() {
	if !a.HasSecondary() {
		return
	}
	a.Secondary.Text.Delete = true
}

// Reconcile recomputes the crossing fields of every pair from their
// partner. It must run after every mutation, just before emission.
func (a *Axes) Reconcile() {
	if a.Primary != nil {
		mirror(a.Primary.Text, a.Primary.Value)
	}
	if a.Secondary != nil {
		mirror(a.Secondary.Text, a.Secondary.Value)
	}
	if a.Depth != nil {
		a.Depth.IsCrosses = true
		a.Depth.Crosses = CrossesAutoZero
	}
}

func (a *Axes) pair(secondary bool) *AxisPair {
	if secondary && a.Secondary != nil {
		return a.Secondary
	}
	return a.Primary
}
