package particle

import "container/heap"

type scheduled struct {
	due      float64
	particle Particle
}

type dueQueue []scheduled

func (q dueQueue) Len() int           { return len(q) }
func (q dueQueue) Less(i, j int) bool { return q[i].due < q[j].due }
func (q dueQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *dueQueue) Push(x any)        { *q = append(*q, x.(scheduled)) }
func (q *dueQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = scheduled{}
	*q = old[:n-1]
	return item
}

// Scheduler holds particles waiting for their spawn time, ordered by absolute
// due time. It has no upper bound and no way to cancel an entry.
type Scheduler struct {
	queue dueQueue
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues p to become live at now+delay. The due time is fixed here
// and never recomputed.
func (s *Scheduler) Schedule(p Particle, now, delay float64) {
	heap.Push(&s.queue, scheduled{due: now + delay, particle: p})
}

// DrainDue pops every entry with due <= now in ascending due order. Entries
// with equal due times come out in no particular order.
func (s *Scheduler) DrainDue(now float64, fn func(p Particle)) int {
	n := 0
	for s.queue.Len() > 0 && s.queue[0].due <= now {
		e := heap.Pop(&s.queue).(scheduled)
		fn(e.particle)
		n++
	}
	return n
}

func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// NextDue returns the earliest due time, if any entry is queued.
func (s *Scheduler) NextDue() (float64, bool) {
	if s.queue.Len() == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}
