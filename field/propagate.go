package field

import "container/heap"

// worklist abstracts the two propagation disciplines.
type worklist interface {
	push(idx, cost int)
	// pop returns the next cell to process; ok is false when drained.
	pop() (idx int, ok bool)
}

// fifo is a plain queue; a cell may sit in it several times.
type fifo struct {
	queue []int
	head  int
}

func (q *fifo) push(idx, _ int) { q.queue = append(q.queue, idx) }

func (q *fifo) pop() (int, bool) {
	if q.head == len(q.queue) {
		return 0, false
	}
	idx := q.queue[q.head]
	q.head++
	// Reclaim the consumed prefix once it dominates the buffer.
	if q.head > 1024 && q.head*2 > len(q.queue) {
		q.queue = append(q.queue[:0], q.queue[q.head:]...)
		q.head = 0
	}
	return idx, true
}

// lazyHeap is a min-heap with lazy decrease-key: improved cells are pushed
// again and stale entries are skipped when popped.
type lazyHeap struct {
	pq   costPQ
	cost []int
}

func (h *lazyHeap) push(idx, cost int) { heap.Push(&h.pq, pqItem{idx: idx, cost: cost}) }

func (h *lazyHeap) pop() (int, bool) {
	for h.pq.Len() > 0 {
		it := heap.Pop(&h.pq).(pqItem)
		if it.cost > h.cost[it.idx] {
			continue // stale
		}
		return it.idx, true
	}
	return 0, false
}

// runner holds the mutable state of one cost propagation.
type runner struct {
	f    *Field
	work worklist
}

// newRunner allocates the cost array of f and seeds the target.
func newRunner(f *Field, s Strategy) *runner {
	n := len(f.blocked)
	f.cost = make([]int, n)
	for i := range f.cost {
		f.cost[i] = Unreachable
	}

	var w worklist
	switch s {
	case StrategyFIFO:
		w = &fifo{queue: make([]int, 0, n)}
	default:
		w = &lazyHeap{pq: make(costPQ, 0, n), cost: f.cost}
	}

	t := f.index(f.target)
	f.cost[t] = 0
	w.push(t, 0)

	return &runner{f: f, work: w}
}

// run drains the worklist. A processed cell relaxes every in-bounds, free
// neighbor whose cost strictly improves, and re-enqueues it.
func (r *runner) run() {
	f := r.f
	for {
		u, ok := r.work.pop()
		if !ok {
			return
		}
		f.stats.Processed++
		uc := f.coordinate(u)
		cu := f.cost[u]
		for _, s := range f.steps {
			vc := uc.Add(s.Offset)
			if !f.inBounds(vc) {
				continue
			}
			v := f.index(vc)
			if f.blocked[v] {
				continue
			}
			nc := cu + s.Weight
			if nc >= f.cost[v] {
				continue
			}
			f.cost[v] = nc
			f.stats.Relaxations++
			r.work.push(v, nc)
		}
	}
}
