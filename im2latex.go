// Package im2latex implements the data augmentation and
// batching pipeline used to train image-to-markup formula
// recognition models.
// It includes a sub-package for collating augmented image
// batches with tokenized target sequences.
package im2latex

import (
	"fmt"
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var c Chain
	serializer.RegisterTypedDeserializer(c.SerializerType(), DeserializeChain)
}

// A Transform is a batch-level image operation.
//
// A Transform's Apply method consumes a list of images and
// produces a new list of the same length.
// The shape of individual images may change; the count may
// not.
// Input images are not guaranteed to be preserved.
//
// Randomized transforms draw fresh randomness from r on
// every call, sampling once per call so that every image
// in the list receives the same perturbation.
// If r is nil, the process-wide random source is used.
// Deterministic transforms ignore r.
type Transform interface {
	Apply(imgs []*Image, r *rand.Rand) []*Image
}

// A Chain applies a list of transforms, one after another.
type Chain []Transform

// DeserializeChain attempts to deserialize the chain.
func DeserializeChain(d []byte) (Chain, error) {
	slice, err := serializer.DeserializeSlice(d)
	if err != nil {
		return nil, essentials.AddCtx("deserialize Chain", err)
	}
	res := make(Chain, len(slice))
	for i, x := range slice {
		if t, ok := x.(Transform); ok {
			res[i] = t
		} else {
			return nil, fmt.Errorf("deserialize Chain: not a Transform: %T", x)
		}
	}
	return res, nil
}

// Apply applies every transform in order.
// If the chain contains no transforms, the input is
// returned as output.
func (c Chain) Apply(imgs []*Image, r *rand.Rand) []*Image {
	for _, t := range c {
		out := t.Apply(imgs, r)
		if len(out) != len(imgs) {
			panic(fmt.Sprintf("transform changed batch size: %T", t))
		}
		imgs = out
	}
	return imgs
}

// SerializerType returns the unique ID used to serialize
// a Chain with the serializer package.
func (c Chain) SerializerType() string {
	return "github.com/ygnn123/im2latex.Chain"
}

// Serialize attempts to serialize the chain.
// If any Transform is not a serializer.Serializer, this
// fails.
func (c Chain) Serialize() ([]byte, error) {
	var slice []serializer.Serializer
	for _, t := range c {
		if s, ok := t.(serializer.Serializer); ok {
			slice = append(slice, s)
		} else {
			return nil, fmt.Errorf("not a Serializer: %T", t)
		}
	}
	return serializer.SerializeSlice(slice)
}
