package syllabify

// legalOnset tests an onset cluster against the onset rules of General
// American English. atWordStart reports whether the start-of-word marker
// precedes the cluster.
//
// If the cluster is illegal, its first phone is the one to give away to the
// preceding syllable.
func legalOnset(cluster []Phone, atWordStart bool) bool {
	if geminate(cluster) {
		return false
	}
	switch len(cluster) {
	case 0:
		return true
	case 1:
		return cluster[0].Symbol != "NG"
	case 2:
		return legalOnsetPair(cluster[0], cluster[1])
	case 3:
		return legalOnsetTriple(cluster[0], cluster[1], cluster[2], atWordStart)
	}
	return false
}

// geminate is true if the cluster contains two identical adjacent phones.
func geminate(cluster []Phone) bool {
	for i := 1; i < len(cluster); i++ {
		if cluster[i].Symbol == cluster[i-1].Symbol {
			return true
		}
	}
	return false
}

func legalOnsetPair(c1, c2 Phone) bool {
	switch {
	case isConsonant(c1) && c2.Symbol == "Y": // pure, huge, music
		return true
	case stops.has(c1) && approximants.has(c2): // play, tree, quick
		return true
	case (voicelessFricative(c1) || c1.Symbol == "V") && approximants.has(c2): // floor, three, swing
		return true
	}
	if c1.Symbol == "S" {
		switch {
		case voiceless.has(c2) && !affricates.has(c2): // speak, sphere
			return true
		case nasals.has(c2) && c2.Symbol != "NG": // smile, snow
			return true
		case c2.Symbol == "V": // svelte
			return true
		}
		return false
	}
	// clusters normalized through loanwords: shmooze, mwah, Nguyen
	switch c1.Symbol {
	case "SH":
		return nasals.has(c2)
	case "M":
		return approximants.has(c2)
	case "N":
		return c2.Symbol == "W"
	}
	return false
}

// Only s-clusters can be of length 3.
func legalOnsetTriple(c1, c2, c3 Phone, atWordStart bool) bool {
	if c1.Symbol != "S" {
		return false
	}
	switch {
	case voiceless.has(c2) && stops.has(c2) && approximants.has(c3): // split, street, square
		return true
	case voicelessFricative(c2) && c3.Symbol == "R": // sphragistics
		return true
	case atWordStart && c2.Symbol == "M" && c3.Symbol == "Y": // smew
		return true
	}
	return false
}

func voicelessFricative(p Phone) bool {
	return voiceless.has(p) && fricatives.has(p)
}

// rebalanceOnsets repairs illegal onsets by moving their first consonant to
// the coda of the preceding syllable, until every onset is legal. The first
// syllable has no predecessor; an illegal onset there is an error.
//
// Every step shortens an onset by one phone, so the loop performs at most as
// many steps as there are consonants in the word.
func rebalanceOnsets(drafts []*draft, word string) error {
	for i, d := range drafts {
		for !legalOnset(d.Onset, d.atWordStart()) {
			if i == 0 {
				return &Error{Kind: BadOnset, Word: word, Phone: joinPhones(d.Onset)}
			}
			assert(len(d.Onset) > 0, "empty onset cannot be illegal")
			prev := drafts[i-1]
			c := d.Onset[0]
			prev.Coda = append(prev.Coda, c)
			d.Onset = d.Onset[1:]
			tracer().Debugf("onset: moved %s into coda of syllable %d of %q", c, i-1, word)
		}
	}
	return nil
}
