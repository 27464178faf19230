package particle

// Ring is fixed-capacity circular storage for particles. Slots from head up
// to (not including) tail are in range; when an insert would make tail catch
// up with head, the oldest slot is dropped.
//
// One slot more than the requested capacity is allocated so that head == tail
// can keep meaning "empty" while capacity particles are held.
type Ring struct {
	slots []Particle
	head  int
	tail  int
}

func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{slots: make([]Particle, capacity+1)}
}

// Cap returns how many particles can be in range at once.
func (r *Ring) Cap() int {
	return len(r.slots) - 1
}

// Len returns the number of slots in range, dead ones included.
func (r *Ring) Len() int {
	n := len(r.slots)
	return (r.tail - r.head + n) % n
}

func (r *Ring) Empty() bool {
	return r.head == r.tail
}

func (r *Ring) next(i int) int {
	i++
	if i == len(r.slots) {
		return 0
	}
	return i
}

// Insert writes p at tail, evicting the oldest particle if the ring is full.
// It reports whether an eviction happened.
func (r *Ring) Insert(p Particle) (evicted bool) {
	r.slots[r.tail] = p
	r.tail = r.next(r.tail)
	if r.tail == r.head {
		r.head = r.next(r.head)
		return true
	}
	return false
}

// Live walks the slots in range in insertion order. The pointer refers to the
// backing slot, so writes through it are kept. Returning false stops the walk.
// The index passed to fn is the slot index, not the position in the range.
func (r *Ring) Live(fn func(i int, p *Particle) bool) {
	for i := r.head; i != r.tail; i = r.next(i) {
		if !fn(i, &r.slots[i]) {
			return
		}
	}
}

// Head returns the slot index of the oldest particle in range.
func (r *Ring) Head() int {
	return r.head
}

// AdvanceHeadIf retires the oldest slot when pred holds for it. Retirement
// only ever happens at head; dead slots further in stay in range until head
// reaches them.
func (r *Ring) AdvanceHeadIf(pred func(p *Particle) bool) bool {
	if r.Empty() || !pred(&r.slots[r.head]) {
		return false
	}
	r.head = r.next(r.head)
	return true
}

// Reset drops every slot without reallocating.
func (r *Ring) Reset() {
	r.head = 0
	r.tail = 0
}
