package session

// Pair names two collections of a CrossReference run by selection index.
// Self pairs connect a collection with itself.
type Pair struct {
	A, B int
	Self bool
}

// Pairs returns the connection topology for n selected paths.
//
// With n >= 2 each collection is paired with the next one, cyclically:
// (0,1), (1,2), ..., (n-1,0). With exactly two paths the closing pair
// (1,0) is omitted because (0,1) already covers it. When self is set and
// n >= 1, the self pairs (i,i) follow in index order.
func Pairs(n int, self bool) []Pair {
	var pairs []Pair
	if n > 1 {
		for i := range n {
			switch {
			case i < n-1:
				pairs = append(pairs, Pair{A: i, B: i + 1})
			case n != 2:
				pairs = append(pairs, Pair{A: i, B: 0})
			}
		}
	}
	if n > 0 && self {
		for i := range n {
			pairs = append(pairs, Pair{A: i, B: i, Self: true})
		}
	}
	return pairs
}
