// SPDX-License-Identifier: MIT

package centrality

// distItem is a heap entry: a node id and its tentative distance.
type distItem struct {
	id   string
	dist float64
	seq  int
}

// distPQ is a min-heap of *distItem by (dist, seq) with lazy decrease-key.
type distPQ struct {
	items []*distItem
	seq   int
}

func (pq *distPQ) next() int {
	pq.seq++

	return pq.seq
}

func (pq *distPQ) Len() int { return len(pq.items) }

func (pq *distPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.seq < b.seq
}

func (pq *distPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *distPQ) Push(x interface{}) { pq.items = append(pq.items, x.(*distItem)) }

func (pq *distPQ) Pop() interface{} {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items[n-1] = nil
	pq.items = pq.items[:n-1]

	return item
}
