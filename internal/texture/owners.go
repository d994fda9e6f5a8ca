package texture

import (
	"fmt"
	"strings"
)

// ClaimPolicy decides which models may claim a texture when several model
// names prefix it (e.g. "Rock" and "Rock01").
type ClaimPolicy int

const (
	// ClaimLongest gives a texture only to the model with the longest
	// normalized name that prefixes it.
	ClaimLongest ClaimPolicy = iota
	// ClaimShared lets every prefixing model claim the texture.
	ClaimShared
)

func ParseClaimPolicy(s string) (ClaimPolicy, error) {
	switch strings.ToLower(s) {
	case "", "longest":
		return ClaimLongest, nil
	case "shared":
		return ClaimShared, nil
	}
	return ClaimLongest, fmt.Errorf("texture: unknown claim policy %q", s)
}

func (p ClaimPolicy) String() string {
	if p == ClaimShared {
		return "shared"
	}
	return "longest"
}

// AssignOwners splits files between models according to policy. The result
// holds, for each model, the files it may classify, in file order. Ties on
// normalized name length go to the model listed first.
func AssignOwners(models []string, files []File, policy ClaimPolicy) map[string][]File {
	out := make(map[string][]File, len(models))
	if policy == ClaimShared {
		for _, m := range models {
			out[m] = files
		}
		return out
	}
	for _, f := range files {
		if !IsTexture(f.Name) {
			continue
		}
		base := BaseName(f.Name)
		owner, best := "", -1
		for _, m := range models {
			n := len(Normalize(m))
			if n > best && Claims(m, base) {
				owner, best = m, n
			}
		}
		if best >= 0 {
			out[owner] = append(out[owner], f)
		}
	}
	return out
}
