package skipmap

import randv2 "math/rand/v2"

func newRandSource() randv2.Source {
	return randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
}

// randomHeight samples a tower height in [1, maxHeight]. Starting at 1,
// each trial promotes one level with probability 1/branchFactor, so
// P(height = k) decays geometrically with the tail clipped at
// maxHeight.
func (l *SkipList) randomHeight() int {
	h := 1
	for h < l.cfg.maxHeight && l.rng.Uint64()%uint64(l.cfg.branchFactor) == 0 {
		h++
	}
	return h
}
