package collate

import "strings"

// A TokenMatrix is a dense batch-size x width matrix of
// token ids, row-major.
type TokenMatrix struct {
	Rows int
	Cols int
	Data []int
}

// NewTokenMatrix creates a matrix with every cell set to
// fill.
func NewTokenMatrix(rows, cols, fill int) *TokenMatrix {
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = fill
	}
	return &TokenMatrix{Rows: rows, Cols: cols, Data: data}
}

// At returns the id at row i, column j.
func (t *TokenMatrix) At(i, j int) int {
	return t.Data[i*t.Cols+j]
}

// Set sets the id at row i, column j.
func (t *TokenMatrix) Set(i, j, id int) {
	t.Data[i*t.Cols+j] = id
}

// PrependConst returns a copy of the matrix with one extra
// leading column set to id.
func (t *TokenMatrix) PrependConst(id int) *TokenMatrix {
	res := NewTokenMatrix(t.Rows, t.Cols+1, id)
	for i := 0; i < t.Rows; i++ {
		copy(res.Data[i*res.Cols+1:(i+1)*res.Cols], t.Data[i*t.Cols:(i+1)*t.Cols])
	}
	return res
}

// AppendConst returns a copy of the matrix with one extra
// trailing column set to id.
func (t *TokenMatrix) AppendConst(id int) *TokenMatrix {
	res := NewTokenMatrix(t.Rows, t.Cols+1, id)
	for i := 0; i < t.Rows; i++ {
		copy(res.Data[i*res.Cols:(i+1)*res.Cols-1], t.Data[i*t.Cols:(i+1)*t.Cols])
	}
	return res
}

// FormulasToMatrix tokenizes formulas on whitespace and
// packs them into one matrix, right-padded with the PAD
// id.
// The matrix width is the maximum token count across the
// batch, and symbols missing from the vocabulary map to
// the UNK id.
func FormulasToMatrix(formulas []string, v Vocab) *TokenMatrix {
	split := make([][]string, len(formulas))
	var maxLen int
	for i, f := range formulas {
		split[i] = strings.Fields(f)
		if len(split[i]) > maxLen {
			maxLen = len(split[i])
		}
	}
	res := NewTokenMatrix(len(formulas), maxLen, v.PadID())
	for i, toks := range split {
		for j, sign := range toks {
			id, ok := v.ID(sign)
			if !ok {
				id = v.UnkID()
			}
			res.Set(i, j, id)
		}
	}
	return res
}
