package cubelet

import "math/rand"

var scrambleFaces = []string{"U", "D", "L", "R", "F", "B"}
var scrambleSuffixes = []string{"", "2", "'"}

// RandomSequence generates n random face turns, never repeating the same
// face twice in a row (a repeat would just collapse into a single turn
// under Canonicalise).
func RandomSequence(n int) MoveSequence {
	var toks []string
	last := ""
	for i := 0; i < n; i++ {
		face := scrambleFaces[rand.Intn(len(scrambleFaces))]
		for face == last {
			face = scrambleFaces[rand.Intn(len(scrambleFaces))]
		}
		last = face
		toks = append(toks, face+scrambleSuffixes[rand.Intn(len(scrambleSuffixes))])
	}

	seq, err := ParseSequence(joinTokens(toks))
	if err != nil {
		panic("cubelet: generated scramble failed to parse: " + err.Error())
	}
	return seq
}

func joinTokens(toks []string) string {
	out := ""
	for i, t := range toks {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}
