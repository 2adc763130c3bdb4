package collate

import (
	"math/rand"
	"testing"

	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/ygnn123/im2latex"
)

func testRecord(name, formula string, h, w int) *Record {
	img := im2latex.NewImage(h, w, 3)
	for i := range img.Data {
		img.Data[i] = uint8((i*13 + 5) % 256)
	}
	return &Record{Image: img, Formula: formula, Name: name}
}

func TestCollateSorting(t *testing.T) {
	c := &Collator{
		Vocab:   testVocab(),
		Creator: anyvec32.CurrentCreator(),
	}
	recs := []*Record{
		testRecord("one", "a", 4, 6),
		testRecord("three", "a b c", 4, 6),
		testRecord("two", "a b", 4, 6),
	}
	batch, err := c.Collate(recs)
	if err != nil {
		t.Fatal(err)
	}
	if batch.Num != 3 {
		t.Fatalf("batch size should be 3 but got %d", batch.Num)
	}
	expNames := []string{"three", "two", "one"}
	for i, x := range expNames {
		if batch.Names[i] != x {
			t.Errorf("name %d should be %q but got %q", i, x,
				batch.Names[i])
		}
	}
	if batch.TrainTargets.Rows != 3 || batch.TrainTargets.Cols != 4 {
		t.Errorf("bad train target shape: %dx%d",
			batch.TrainTargets.Rows, batch.TrainTargets.Cols)
	}
	for i := 0; i < batch.TrainTargets.Rows; i++ {
		if a := batch.TrainTargets.At(i, 0); a != c.Vocab.StartID() {
			t.Errorf("train row %d should start with %d but got %d",
				i, c.Vocab.StartID(), a)
		}
	}
	expLoss := [][]int{{1, 2, 3, 5}, {1, 2, 0, 5}, {1, 0, 0, 5}}
	for i, row := range expLoss {
		for j, x := range row {
			if a := batch.LossTargets.At(i, j); a != x {
				t.Errorf("loss entry %d,%d should be %d but got %d",
					i, j, x, a)
			}
		}
	}
}

func TestCollateSortStability(t *testing.T) {
	c := &Collator{
		Vocab:   testVocab(),
		Creator: anyvec32.CurrentCreator(),
	}
	recs := []*Record{
		testRecord("first", "a b", 4, 6),
		testRecord("second", "c a", 4, 6),
	}
	batch, err := c.Collate(recs)
	if err != nil {
		t.Fatal(err)
	}
	if batch.Names[0] != "first" || batch.Names[1] != "second" {
		t.Errorf("ties should keep their order: %v", batch.Names)
	}
}

func TestCollateShapeFilter(t *testing.T) {
	c := &Collator{
		Vocab:   testVocab(),
		Creator: anyvec32.CurrentCreator(),
	}
	recs := []*Record{
		testRecord("keep1", "a", 4, 6),
		testRecord("drop", "b", 5, 6),
		testRecord("keep2", "c", 4, 6),
	}
	batch, err := c.Collate(recs)
	if err != nil {
		t.Fatal(err)
	}
	if batch.Num != 2 {
		t.Fatalf("batch size should be 2 but got %d", batch.Num)
	}
	for _, name := range batch.Names {
		if name == "drop" {
			t.Error("mismatched record should be dropped")
		}
	}
}

func TestCollateTensor(t *testing.T) {
	c := &Collator{
		Vocab:   testVocab(),
		Creator: anyvec32.CurrentCreator(),
	}
	recs := []*Record{
		testRecord("x", "a", 4, 6),
		testRecord("y", "b", 4, 6),
	}
	batch, err := c.Collate(recs)
	if err != nil {
		t.Fatal(err)
	}
	if batch.ImageLen != 4*6*3 {
		t.Errorf("image length should be %d but got %d", 4*6*3,
			batch.ImageLen)
	}
	if batch.Images.Output().Len() != 2*4*6*3 {
		t.Errorf("tensor length should be %d but got %d", 2*4*6*3,
			batch.Images.Output().Len())
	}
}

func TestCollateChain(t *testing.T) {
	c := &Collator{
		Vocab:   testVocab(),
		Creator: anyvec32.CurrentCreator(),
		Chain: im2latex.Chain{
			&im2latex.ResizePad{TargetHeight: 8, TargetWidth: 8},
		},
		Rand: rand.New(rand.NewSource(7)),
	}
	recs := []*Record{testRecord("x", "a", 4, 6)}
	batch, err := c.Collate(recs)
	if err != nil {
		t.Fatal(err)
	}
	if batch.ImageLen != 8*8*3 {
		t.Errorf("image length should be %d but got %d", 8*8*3,
			batch.ImageLen)
	}
}

func TestCollateEmpty(t *testing.T) {
	c := &Collator{
		Vocab:   testVocab(),
		Creator: anyvec32.CurrentCreator(),
	}
	if _, err := c.Collate(nil); err == nil {
		t.Error("empty input should fail")
	}
}

func TestCollateFetcher(t *testing.T) {
	c := &Collator{
		Vocab:   testVocab(),
		Creator: anyvec32.CurrentCreator(),
	}
	var fetcher anysgd.Fetcher = c
	list := RecordList{
		testRecord("x", "a b", 4, 6),
		testRecord("y", "c", 4, 6),
	}
	if list.LenAt(0) != 2 || list.LenAt(1) != 1 {
		t.Fatal("bad token counts")
	}
	batch, err := fetcher.Fetch(list.Slice(0, 2))
	if err != nil {
		t.Fatal(err)
	}
	if batch.(*Batch).Num != 2 {
		t.Errorf("batch size should be 2 but got %d", batch.(*Batch).Num)
	}
}
