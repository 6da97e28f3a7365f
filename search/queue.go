// This file implements the FIFO work-list strategy: Bellman–Ford-style
// relaxation without distance ordering.
package search

// processQueue relaxes from a FIFO work list. A location enters the list
// when its distance strictly improves and is not already pending; popping it
// relaxes all its hops against its then-current distance.
//
// Because every re-enqueue is driven by a strict improvement and costs are
// non-negative, the number of improvements per location is finite and the
// loop terminates with the same Table as the heap strategy, while memory
// stays bounded by the number of pending relaxations.
func (r *runner) processQueue() error {
	// pending tracks membership in the work list to avoid duplicate entries.
	pending := map[string]bool{r.opts.Source: true}
	queue := []string{r.opts.Source}

	var u string
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		pending[u] = false

		if err := r.relax(u, func(to string, _ float64) {
			if !pending[to] {
				pending[to] = true
				queue = append(queue, to)
			}
		}); err != nil {
			return err
		}
	}

	return nil
}
