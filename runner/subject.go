package runner

import "reflect"

// subject holds the observer registry and the payload of the next
// notification. The payload is cleared after each notify; status persists.
type subject struct {
	observers []Observer

	status      Status
	text        []string
	err         string
	summary     *Result
	suggestions []Skeleton
}

// Attach registers o. Attaching an observer that is already registered is a
// no-op.
func (s *subject) Attach(o Observer) {
	if o == nil {
		return
	}
	for _, existing := range s.observers {
		if sameObserver(existing, o) {
			return
		}
	}
	s.observers = append(s.observers, o)
}

func (s *subject) Detach(o Observer) {
	for i, existing := range s.observers {
		if sameObserver(existing, o) {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *subject) notify() {
	e := Event{
		Status:    s.status,
		Text:      s.text,
		Err:       s.err,
		Result:    s.summary,
		Skeletons: s.suggestions,
	}
	for _, o := range s.observers {
		o.Update(e)
	}
	s.text = nil
	s.err = ""
	s.summary = nil
	s.suggestions = nil
}

func (s *subject) emit(status Status, text []string, err string) {
	s.status = status
	s.text = text
	s.err = err
	s.notify()
}

// sameObserver compares observers by identity. Observers whose dynamic type
// is not comparable, such as ObserverFunc, are never considered equal.
func sameObserver(a, b Observer) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
