package testutil

// ScriptedPivots is a sorting.PivotSource that replays a fixed script of
// choices.
//
// Each call to IntN(n) consumes the next scripted value, reduced modulo n so
// one script works at every recursion depth. Negative values pick from the
// end: -1 is the last element. Once the script is exhausted it repeats
// from the beginning. An empty script always picks index 0.
type ScriptedPivots struct {
	script []int
	pos    int
	calls  int
}

// NewScriptedPivots creates a pivot source from script.
func NewScriptedPivots(script ...int) *ScriptedPivots {
	return &ScriptedPivots{script: script}
}

// FirstPivot always picks the first element, the classic worst case for
// already-sorted input.
func FirstPivot() *ScriptedPivots { return NewScriptedPivots(0) }

// LastPivot always picks the last element.
func LastPivot() *ScriptedPivots { return NewScriptedPivots(-1) }

// IntN returns the next scripted index in [0, n).
func (p *ScriptedPivots) IntN(n int) int {
	if n <= 0 {
		panic("ScriptedPivots: IntN called with n <= 0")
	}
	p.calls++
	if len(p.script) == 0 {
		return 0
	}

	v := p.script[p.pos]
	p.pos = (p.pos + 1) % len(p.script)

	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Calls returns how many pivots have been drawn.
func (p *ScriptedPivots) Calls() int {
	return p.calls
}
