package generator

import "svw.info/elevator/internal/memo"

// Generator produces the states one elevator trip away, skipping any the memo has seen.
type Generator struct {
	Memo *memo.Memo
}

// New wires a generator that records its output in m.
func New(m *memo.Memo) *Generator {
	if m == nil {
		m = memo.New()
	}
	return &Generator{Memo: m}
}
