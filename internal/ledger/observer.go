package ledger

// Subscription is a live observer registration. Unsubscribe releases it;
// further notifications stop immediately.
type Subscription struct {
	id    uint64
	store *Store
	fn    Observer
}

// Subscribe registers the observer and synchronously delivers the
// current list, so new subscribers see the initial state. After that
// the observer receives exactly one call per mutation, in the order
// mutations were applied.
func (s *Store) Subscribe(fn Observer) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	sub := &Subscription{id: s.nextID, store: s, fn: fn}
	s.subs = append(s.subs, sub)

	fn(s.snapshot())
	return sub
}

// Unsubscribe releases the registration. Safe to call more than once.
func (sub *Subscription) Unsubscribe() {
	s := sub.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, candidate := range s.subs {
		if candidate.id == sub.id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
