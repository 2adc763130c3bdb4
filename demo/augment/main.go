// Command augment runs a transform chain over a small
// synthetic batch and prints the collated result.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/ygnn123/im2latex"
	"github.com/ygnn123/im2latex/collate"
)

func main() {
	var chainPath string
	var seed int64
	flag.StringVar(&chainPath, "chain", "", "TOML transform chain file")
	flag.Int64Var(&seed, "seed", 1, "random seed")
	flag.Parse()

	var chain im2latex.Chain
	var err error
	if chainPath != "" {
		chain, err = im2latex.LoadChainFile(chainPath)
	} else {
		chain, err = im2latex.BuildChain([]im2latex.TransformConfig{
			{Name: "Shift", Shifts: []int{10, 5}},
			{Name: "Blur"},
			{Name: "ResizePad", TargetShape: []int{96, 480}},
		})
	}
	if err != nil {
		log.Fatal(err)
	}

	vocab := &collate.MapVocab{
		Signs: map[string]int{"x": 4, "+": 5, "y": 6, "=": 7, "1": 8},
		Pad:   0,
		Start: 1,
		End:   2,
		Unk:   3,
	}
	c := &collate.Collator{
		Vocab:   vocab,
		Chain:   chain,
		Creator: anyvec32.CurrentCreator(),
		Rand:    rand.New(rand.NewSource(seed)),
	}

	recs := collate.RecordList{
		{Image: sampleImage(64, 256), Formula: "x + y = 1", Name: "eq0.png"},
		{Image: sampleImage(64, 256), Formula: "x + 1", Name: "eq1.png"},
		{Image: sampleImage(64, 256), Formula: "y", Name: "eq2.png"},
	}

	log.Println("Collating...")
	batch, err := c.Collate(recs)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("batch: %d images of %d values", batch.Num, batch.ImageLen)
	log.Printf("train targets: %dx%d", batch.TrainTargets.Rows, batch.TrainTargets.Cols)
	log.Printf("loss targets: %dx%d", batch.LossTargets.Rows, batch.LossTargets.Cols)
	log.Printf("names: %v", batch.Names)
}

// sampleImage draws a dark horizontal stroke on a white
// canvas.
func sampleImage(height, width int) *im2latex.Image {
	img := im2latex.NewImage(height, width, 3)
	for i := range img.Data {
		img.Data[i] = 0xff
	}
	for x := width / 4; x < 3*width/4; x++ {
		for z := 0; z < 3; z++ {
			img.Set(height/2, x, z, 0)
		}
	}
	return img
}
