package metricstore

// pointRing is a fixed-capacity circular buffer of points in insertion order.
// When full, the oldest point is overwritten. It is not safe for concurrent use;
// the owning series serializes access.
type pointRing struct {
	buffer   []Point
	capacity int
	index    int
	count    int
}

func newPointRing(capacity int) *pointRing {
	return &pointRing{
		buffer:   make([]Point, 0, min(capacity, initialRingAlloc)),
		capacity: capacity,
	}
}

// add appends p and reports whether an older point was evicted.
func (r *pointRing) add(p Point) bool {
	if r.count < r.capacity {
		r.buffer = append(r.buffer, p)
		r.count++

		return false
	}

	r.buffer[r.index] = p
	r.index = (r.index + 1) % r.capacity

	return true
}

// all returns a copy of the stored points, oldest first.
func (r *pointRing) all() []Point {
	if r.count == 0 {
		return nil
	}

	result := make([]Point, r.count)
	if r.count < r.capacity {
		copy(result, r.buffer)
	} else {
		copy(result, r.buffer[r.index:])
		copy(result[r.capacity-r.index:], r.buffer[:r.index])
	}

	return result
}

// retain keeps only points for which keep returns true and reports how many were removed.
func (r *pointRing) retain(keep func(Point) bool) int {
	points := r.all()
	kept := points[:0]

	for _, p := range points {
		if keep(p) {
			kept = append(kept, p)
		}
	}

	removed := len(points) - len(kept)
	if removed == 0 {
		return 0
	}

	r.buffer = make([]Point, len(kept), max(len(kept), min(r.capacity, initialRingAlloc)))
	copy(r.buffer, kept)
	r.count = len(kept)
	r.index = 0

	return removed
}

func (r *pointRing) len() int {
	return r.count
}
