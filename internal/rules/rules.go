// Package rules implements the pattern-matching half of a Margolus block
// automaton: 2x2 blocks, wildcard patterns, copy-through output templates,
// and an ordered rule table with optional horizontal mirror symmetry.
package rules

// Block holds the four cells of a 2x2 grid block in the order top-left,
// top-right, bottom-left, bottom-right.
type Block [4]uint8

// Mirror flips a block horizontally, swapping the two top cells and the two
// bottom cells. It is its own inverse.
func Mirror(b Block) Block {
	return Block{b[1], b[0], b[3], b[2]}
}

// PatternCell is one position of an input pattern: either a literal cell
// value or a wildcard matching anything.
type PatternCell struct {
	Value uint8
	Any   bool
}

// TemplateCell is one position of an output template: either a literal cell
// value or an instruction to copy the matched input cell through unchanged.
type TemplateCell struct {
	Value uint8
	Copy  bool
}

// Lit returns a pattern cell matching exactly v.
func Lit(v uint8) PatternCell { return PatternCell{Value: v} }

// Any returns a wildcard pattern cell.
func Any() PatternCell { return PatternCell{Any: true} }

// Out returns a template cell emitting the literal v.
func Out(v uint8) TemplateCell { return TemplateCell{Value: v} }

// Keep returns a template cell that copies the input cell through.
func Keep() TemplateCell { return TemplateCell{Copy: true} }

// Pattern is a 2x2 input pattern in block order.
type Pattern [4]PatternCell

// Matches reports whether every position of b satisfies the pattern:
// wildcards accept any value, literals require equality.
func (p Pattern) Matches(b Block) bool {
	for i, pc := range p {
		if pc.Any {
			continue
		}
		if pc.Value != b[i] {
			return false
		}
	}
	return true
}

// Template is a 2x2 output template in block order.
type Template [4]TemplateCell

// Apply builds the output block for a matched input: literal positions emit
// their value, copy positions pass the input cell through.
func (t Template) Apply(in Block) Block {
	var out Block
	for i, tc := range t {
		if tc.Copy {
			out[i] = in[i]
			continue
		}
		out[i] = tc.Value
	}
	return out
}

// Rule pairs an input pattern with an output template. When Mirror is set
// the rule also covers the horizontally reflected case.
type Rule struct {
	In     Pattern
	Out    Template
	Mirror bool
}

// Table is an ordered rule list. Earlier rules win; the first match
// short-circuits evaluation for the block.
type Table []Rule

// Resolve transforms a block through the table. Each rule is tried directly
// first; if that fails and the rule is mirror-flagged, the mirrored block is
// tried, and a hit is applied to the mirrored block and mirrored back so
// left/right orientation is restored. A block no rule matches passes through
// unchanged.
func (t Table) Resolve(b Block) Block {
	for _, r := range t {
		if r.In.Matches(b) {
			return r.Out.Apply(b)
		}
		if !r.Mirror {
			continue
		}
		if mb := Mirror(b); r.In.Matches(mb) {
			return Mirror(r.Out.Apply(mb))
		}
	}
	return b
}
