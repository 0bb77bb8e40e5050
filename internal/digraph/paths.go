package digraph

// FindPath enumerates all paths from src to dst, walking backward from
// dst through predecessors. cyclesCount bounds how many times any node
// may be revisited along a single branch; 0 tolerates no cycling at
// all. Each path is an ordered node sequence from src to dst inclusive.
// The enumeration is exhaustive and exponential in the worst case;
// callers needing a single path must post-filter.
func (g *DiGraph[N]) FindPath(src, dst N, cyclesCount int) [][]N {
	return g.findPath(src, dst, cyclesCount, nil)
}

func (g *DiGraph[N]) findPath(src, dst N, cyclesCount int, done map[N]int) [][]N {
	if c, ok := done[dst]; ok && c > cyclesCount {
		return nil // cycle budget exhausted, prune this branch
	}
	if src == dst {
		return [][]N{{src}}
	}
	var out [][]N
	for _, p := range g.pred[dst] {
		// Each branch tracks its own revisit counts.
		doneN := make(map[N]int, len(done)+1)
		for k, v := range done {
			doneN[k] = v
		}
		doneN[dst]++
		for _, path := range g.findPath(src, p, cyclesCount, doneN) {
			if len(path) > 0 && path[0] == src {
				full := make([]N, 0, len(path)+1)
				full = append(full, path...)
				full = append(full, dst)
				out = append(out, full)
			}
		}
	}
	return out
}
