package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Segment is a contiguous run of text with one direction and one script.
// Start and End are rune indices into the line.
type Segment struct {
	Start, End int
	Direction  di.Direction
	Script     language.Script
}

// segmentLine splits runes into direction and script runs and returns them
// in visual order, left to right.
func segmentLine(runes []rune) []Segment {
	if len(runes) == 0 {
		return nil
	}

	var segs []Segment
	for _, run := range bidiRuns(runes) {
		segs = append(segs, splitScripts(runes, run)...)
	}

	if baseDirection(runes) == di.DirectionRTL {
		for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
			segs[i], segs[j] = segs[j], segs[i]
		}
	}
	return segs
}

// bidiRuns returns the directional runs of the line in logical order.
func bidiRuns(runes []rune) []Segment {
	p := bidi.Paragraph{}
	if _, err := p.SetString(string(runes)); err != nil {
		return []Segment{{Start: 0, End: len(runes), Direction: di.DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []Segment{{Start: 0, End: len(runes), Direction: di.DirectionLTR}}
	}

	runs := make([]Segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos is inclusive on both ends.
		start, end := run.Pos()
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		end = min(end+1, len(runes))
		if start >= end {
			continue
		}
		runs = append(runs, Segment{Start: start, End: end, Direction: dir})
	}
	if len(runs) == 0 {
		return []Segment{{Start: 0, End: len(runes), Direction: di.DirectionLTR}}
	}
	return runs
}

// splitScripts splits one directional run at script changes. Common and
// inherited characters join the surrounding script.
func splitScripts(runes []rune, run Segment) []Segment {
	var out []Segment
	cur := run
	cur.Script = firstScript(runes[run.Start:run.End])
	for i := run.Start; i < run.End; i++ {
		s := language.LookupScript(runes[i])
		if !isConcreteScript(s) || s == cur.Script {
			continue
		}
		cur.End = i
		if cur.Start < cur.End {
			out = append(out, cur)
		}
		cur = Segment{Start: i, End: run.End, Direction: run.Direction, Script: s}
	}
	cur.End = run.End
	out = append(out, cur)

	if run.Direction == di.DirectionRTL {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func firstScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); isConcreteScript(s) {
			return s
		}
	}
	return language.Latin
}

func isConcreteScript(s language.Script) bool {
	return s != language.Common && s != language.Inherited && s != language.Unknown
}

// baseDirection reports the paragraph direction from the first strong
// character, defaulting to left to right.
func baseDirection(runes []rune) di.Direction {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
	}
	return di.DirectionLTR
}
