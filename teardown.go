package altdeque

// dropAll zeroes every slot of s and hands its old value to the drop
// function. Each slot is zeroed before its call, so an element is never
// seen twice. If the drop function panics, the remaining slots are still
// processed while the panic unwinds.
func (d *Deque[T]) dropAll(s []T) {
	dropAll(s, d.opts.drop)
}

func dropAll[T any](s []T, drop func(T)) {
	if drop == nil {
		clear(s)
		return
	}
	i := 0
	defer func() {
		if i < len(s) {
			dropAll(s[i:], drop)
		}
	}()
	var zero T
	for i < len(s) {
		t := s[i]
		s[i] = zero
		i++
		drop(t)
	}
}
