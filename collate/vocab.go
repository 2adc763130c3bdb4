package collate

// A Vocab maps formula symbols to integer ids and exposes
// the reserved sentinel ids.
// It is built once before training and treated as
// read-only here.
type Vocab interface {
	// ID looks up a symbol, reporting whether the symbol is
	// known.
	ID(sign string) (int, bool)

	PadID() int
	StartID() int
	EndID() int
	UnkID() int
}

// A MapVocab is a map-backed Vocab.
type MapVocab struct {
	Signs map[string]int

	Pad   int
	Start int
	End   int
	Unk   int
}

// ID looks up a symbol.
func (m *MapVocab) ID(sign string) (int, bool) {
	id, ok := m.Signs[sign]
	return id, ok
}

// PadID returns the padding sentinel.
func (m *MapVocab) PadID() int {
	return m.Pad
}

// StartID returns the sequence-start sentinel.
func (m *MapVocab) StartID() int {
	return m.Start
}

// EndID returns the sequence-end sentinel.
func (m *MapVocab) EndID() int {
	return m.End
}

// UnkID returns the unknown-symbol sentinel.
func (m *MapVocab) UnkID() int {
	return m.Unk
}
