package occlusion

// Scene fans one listener and one geometry query out to many emitters.
//
// It owns the estimator lifecycle: Add creates an estimator, Remove drops
// it, Update advances every remaining emitter with the same deltaTime. Like
// Estimator it is frame-synchronous and not safe for concurrent use.
type Scene struct {
	query    GeometryQuery
	listener PositionSource

	emitters map[int]*Estimator
	nextID   int
}

// NewScene creates a scene. query and listener are required; each Add
// reuses them for the new emitter.
func NewScene(query GeometryQuery, listener PositionSource) (*Scene, error) {
	if query == nil {
		return nil, ErrNilQuery
	}
	if listener == nil {
		return nil, ErrNilListener
	}
	return &Scene{
		query:    query,
		listener: listener,
		emitters: make(map[int]*Estimator),
	}, nil
}

// Add creates an estimator for a new emitter and returns its handle.
func (s *Scene) Add(sink VolumeSink, opts ...Option) (int, *Estimator, error) {
	est, err := New(s.query, s.listener, sink, opts...)
	if err != nil {
		return 0, nil, err
	}
	id := s.nextID
	s.nextID++
	s.emitters[id] = est
	return id, est, nil
}

// Remove drops the emitter with the given handle. Removing an unknown
// handle is a no-op; the emitter simply stops being updated either way.
func (s *Scene) Remove(id int) {
	delete(s.emitters, id)
}

// Get returns the estimator for a handle, or nil.
func (s *Scene) Get(id int) *Estimator {
	return s.emitters[id]
}

// Len returns the number of live emitters.
func (s *Scene) Len() int { return len(s.emitters) }

// Update advances every emitter by dt.
func (s *Scene) Update(dt float64) {
	for _, est := range s.emitters {
		est.Update(dt)
	}
}
