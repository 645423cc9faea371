package justify

// Greedy breaks lines by first fit: words join the current line while the
// packed form still fits, otherwise the line is closed and a new one starts.
// Greedy needs no planning pass and runs in O(N), but it can close lines
// earlier than necessary and leave a later line much looser than the
// optimal strategy would.
type Greedy struct{}

// Break partitions words into greedily filled lines. A word wider than the
// width gets a line of its own; lines are never left empty.
func (Greedy) Break(words []string, width int) [][]string {
	var lines [][]string
	var cur []string
	curLen := 0
	for _, w := range words {
		if len(cur) > 0 && curLen+1+len(w) > width {
			lines = append(lines, cur)
			cur = nil
			curLen = 0
		}
		if len(cur) > 0 {
			curLen++
		}
		cur = append(cur, w)
		curLen += len(w)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}
