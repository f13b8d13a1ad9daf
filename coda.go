package syllabify

import (
	"github.com/derekparker/trie"
)

// codaClusters holds the explicitly licensed coda clusters of length 2 and 3,
// keyed by their space separated phones ("L P S"). The metadata of each key
// is an example word.
var codaClusters = newCodaClusterTable()

func newCodaClusterTable() *trie.Trie {
	t := trie.New()
	add := func(example string, clusters ...string) {
		for _, c := range clusters {
			t.Add(c, example)
		}
	}
	// 3-phone clusters
	add("alps, milked", "L P T", "L P S", "L F TH", "L T S", "L K T", "L K S", "L S T")
	add("carts, worst", "R P T", "R P S", "R M TH", "R T S", "R K T", "R S T")
	add("mumps", "M P T", "M P S")
	add("thousandth", "N D TH")
	add("angst", "NG K T", "NG K S", "NG K TH", "NG S T")
	add("sixth", "K S TH", "K S T")
	// 2-phone clusters beginning with L, e.g. elk, health
	for _, c2 := range []string{"K", "P", "T", "B", "D", "CH", "JH", "F", "S", "SH", "TH", "V", "M", "N"} {
		add("elk", "L "+c2)
	}
	// 2-phone clusters beginning with R, e.g. arc, yarn
	for _, c2 := range []string{"K", "P", "T", "G", "B", "D", "CH", "JH", "F", "S", "SH", "TH", "V", "Z",
		"M", "N", "L"} {
		add("arc", "R "+c2)
	}
	// 2-phone clusters beginning with nasals, e.g. bent, ink
	add("lymph", "M P", "M F", "M TH", "M B")
	add("bent", "N T", "N D", "N CH", "N JH", "N TH", "N S", "N Z", "N F")
	add("ink", "NG K", "NG TH", "NG G")
	// 2-phone clusters beginning with obstruents, e.g. pact, width
	add("loft", "F T", "F TH")
	add("wasp", "S P", "S T", "S K")
	add("apt", "P T", "P TH", "P S", "P F")
	add("pact", "K T", "K S", "K SH")
	add("eighth", "T S", "T TH")
	add("width", "D TH")
	return t
}

// explicitCoda looks up a cluster in the table of licensed coda clusters.
func explicitCoda(cluster []Phone) bool {
	key := joinSymbols(cluster)
	node, ok := codaClusters.Find(key)
	if ok {
		tracer().Debugf("coda: %s licensed (cf. %v)", key, node.Meta())
	}
	return ok
}

// affixed is true if last is an inflectional /s/, /z/, /t/ or /d/ which may
// follow prev in a coda, as in "cats", "dogs", "kissed", "hugged".
func affixed(prev, last Phone) bool {
	switch last.Symbol {
	case "S":
		return sExtended.has(prev)
	case "Z":
		return zExtended.has(prev)
	case "T":
		return tExtended.has(prev)
	case "D":
		return dExtended.has(prev)
	}
	return false
}

// legalCoda tests a coda cluster against the coda rules of General American
// English. An inflectional affix at the end of the cluster is stripped and
// the remaining cluster tested again; the tests for shorter clusters
// fall through to each other.
func legalCoda(cluster []Phone) bool {
	n := len(cluster)
	if n == 0 {
		return true
	}
	if n > 4 {
		return false
	}
	if n == 4 { // 4-phone codas must end with an affix
		if !affixed(cluster[2], cluster[3]) {
			return false
		}
		n = 3
	}
	if n == 3 {
		if !affixed(cluster[1], cluster[2]) {
			return explicitCoda(cluster[:3])
		}
		n = 2
	}
	if n == 2 {
		if affixed(cluster[0], cluster[1]) {
			n = 1
		}
		if explicitCoda(cluster[:2]) {
			return true
		}
	}
	if n == 1 {
		switch cluster[0].Symbol {
		case "HH", "W", "Y": // cannot exist as codas by themselves
			return false
		}
		return true
	}
	return false
}

// checkCodas validates the coda of every syllable.
func checkCodas(drafts []*draft, word string) error {
	for _, d := range drafts {
		if !legalCoda(d.Coda) {
			return &Error{Kind: BadCoda, Word: word, Phone: joinPhones(d.Coda)}
		}
	}
	return nil
}
