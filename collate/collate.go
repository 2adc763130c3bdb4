// Package collate builds training batches for
// image-to-markup models: it synchronizes augmented image
// tensors with tokenized, length-sorted target sequences
// for teacher forcing and loss computation.
package collate

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
	"github.com/ygnn123/im2latex"
)

// A Record pairs one rendered formula image with its
// markup string and image name.
// Records are read-only once constructed.
type Record struct {
	Image   *im2latex.Image
	Formula string
	Name    string
}

// A RecordList is an anysgd.SampleList of records.
type RecordList []*Record

// Len returns the number of records.
func (r RecordList) Len() int {
	return len(r)
}

// Swap swaps two records.
func (r RecordList) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

// Slice copies a sub-slice of the list.
func (r RecordList) Slice(i, j int) anysgd.SampleList {
	return append(RecordList{}, r[i:j]...)
}

// LenAt returns the token count of the i-th formula.
func (r RecordList) LenAt(i int) int {
	return len(strings.Fields(r[i].Formula))
}

// A Batch is a collated training batch: a stacked image
// tensor paired with shifted target matrices.
type Batch struct {
	// Names are image names, index-aligned with the tensor
	// rows and target rows.
	Names []string

	// Images is the batch tensor, batch-first, each image in
	// the channel-major [0, 1] form produced by
	// im2latex.ToTensor.
	Images *anydiff.Const

	// ImageLen is the per-image vector length within Images.
	ImageLen int

	// TrainTargets start with the START id in every row;
	// LossTargets end with the END id.
	// Both have shape (batch, max length + 1).
	TrainTargets *TokenMatrix
	LossTargets  *TokenMatrix

	// Num is the number of records in the batch.
	Num int
}

// A Collator builds training batches from raw records.
//
// Records whose image shape differs from the first
// record's shape are dropped; survivors are ordered by
// formula token count, longest first, with the original
// order kept among ties.
type Collator struct {
	Vocab   Vocab
	Creator anyvec.Creator

	// Chain, if non-nil, is applied to the image list before
	// the batch tensor is stacked.
	Chain im2latex.Chain

	// Rand is the random source for the chain's stochastic
	// transforms.
	// If nil, the process-wide source is used.
	Rand *rand.Rand
}

// Collate builds one batch.
// The record list may not be empty.
func (c *Collator) Collate(recs []*Record) (*Batch, error) {
	if len(recs) == 0 {
		return nil, errors.New("collate batch: no records")
	}

	first := recs[0].Image
	kept := make([]*Record, 0, len(recs))
	for _, rec := range recs {
		if rec.Image.SameShape(first) {
			kept = append(kept, rec)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return len(strings.Fields(kept[i].Formula)) >
			len(strings.Fields(kept[j].Formula))
	})

	imgs := make([]*im2latex.Image, len(kept))
	formulas := make([]string, len(kept))
	names := make([]string, len(kept))
	for i, rec := range kept {
		imgs[i] = rec.Image
		formulas[i] = rec.Formula
		names[i] = rec.Name
	}

	tokens := FormulasToMatrix(formulas, c.Vocab)

	imgs = c.Chain.Apply(imgs, c.Rand)
	stacked := im2latex.Stack(c.Creator, imgs)

	return &Batch{
		Names:        names,
		Images:       anydiff.NewConst(stacked),
		ImageLen:     stacked.Len() / len(kept),
		TrainTargets: tokens.PrependConst(c.Vocab.StartID()),
		LossTargets:  tokens.AppendConst(c.Vocab.EndID()),
		Num:          len(kept),
	}, nil
}

// Fetch implements anysgd.Fetcher.
// The s argument must be a RecordList.
func (c *Collator) Fetch(s anysgd.SampleList) (anysgd.Batch, error) {
	return c.Collate(s.(RecordList))
}
