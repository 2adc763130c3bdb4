package im2latex

import (
	"github.com/BurntSushi/toml"
	"github.com/unixpickle/essentials"
)

// A ChainFile is the on-disk TOML form of a transform
// chain: an ordered list of [[transform]] tables, each
// with a name and transform-specific parameters.
type ChainFile struct {
	Transforms []TransformConfig `toml:"transform"`
}

// LoadChainFile reads a TOML chain description and builds
// the chain it describes.
func LoadChainFile(path string) (Chain, error) {
	var cf ChainFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return nil, essentials.AddCtx("load chain file", err)
	}
	chain, err := BuildChain(cf.Transforms)
	if err != nil {
		return nil, essentials.AddCtx("load chain file", err)
	}
	return chain, nil
}
