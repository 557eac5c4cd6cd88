package vocab

// Merge collapses entries sharing the same word into one entry per word.
// Output order follows each word's first appearance, and readings keep the
// order in which they were found. The first entry's metadata wins.
func Merge(entries []Entry) []Entry {
	index := make(map[string]int, len(entries))
	merged := make([]Entry, 0, len(entries))

	for i := range entries {
		e := &entries[i]
		if pos, ok := index[e.Word]; ok {
			merged[pos].Readings = append(merged[pos].Readings, e.Readings...)
			continue
		}
		index[e.Word] = len(merged)
		merged = append(merged, e.clone())
	}
	return merged
}
