package main

import (
	"math/rand"

	"github.com/IvanBrykalov/linkedpq/policy"
)

// keyGen returns the key source for a pattern. Each worker owns its own
// generator (rand.Rand is NOT goroutine-safe).
func keyGen(pattern string, r *rand.Rand, keySpace, spread int) func() int {
	switch pattern {
	case "ascending":
		k := 0
		return func() int { k++; return k }
	case "descending":
		k := 0
		return func() int { k--; return k }
	case "random":
		return func() int { return r.Intn(keySpace) }
	default: // local
		if spread < 1 {
			spread = 1
		}
		k := keySpace / 2
		return func() int {
			k += r.Intn(2*spread+1) - spread
			return k
		}
	}
}

// duplicatePolicy maps a policy name to a strategy (nil = ignore).
func duplicatePolicy(name string) policy.Func[int, uint64] {
	switch name {
	case "allow":
		return policy.AllowAll[int, uint64]()
	case "override":
		return policy.OverrideAll[int, uint64]()
	default:
		return nil
	}
}
