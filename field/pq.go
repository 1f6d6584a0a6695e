package field

// pqItem is one pending cell in the priority worklist.
type pqItem struct {
	idx  int // flat cell index
	cost int // cost at push time; stale once cost[idx] drops below it
}

// costPQ is a min-heap of pqItem ordered by cost, for container/heap.
// Equal costs pop in heap order; the converged costs do not depend on it.
type costPQ []pqItem

func (pq costPQ) Len() int            { return len(pq) }
func (pq costPQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq costPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
