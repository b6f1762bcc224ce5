package fillrush

// Arrival records an emitter reaching a bucket.
type Arrival struct {
	Emitter *Emitter
	Bucket  *Bucket
}

// ArrivalDetector finds emitters that reached buckets this frame. Results
// are appended to out and returned.
type ArrivalDetector interface {
	Detect(emitters []*Emitter, buckets []*Bucket, out []Arrival) []Arrival
}

// RadiusDetector reports an arrival when an emitter's circle first overlaps
// a bucket's circle. Like a begin-contact callback, an emitter that stays
// inside a bucket is reported once, not every frame.
type RadiusDetector struct {
	// EmitterRadius is added to each bucket's Radius.
	EmitterRadius float64

	contacts map[contactKey]bool
	next     map[contactKey]bool
}

type contactKey struct {
	emitter *Emitter
	bucket  *Bucket
}

// NewRadiusDetector creates a detector for emitters of the given radius.
func NewRadiusDetector(emitterRadius float64) *RadiusDetector {
	return &RadiusDetector{
		EmitterRadius: emitterRadius,
		contacts:      make(map[contactKey]bool),
		next:          make(map[contactKey]bool),
	}
}

// Detect implements ArrivalDetector. Buckets are tested in order; an emitter
// arrives at no more than one bucket per frame.
func (d *RadiusDetector) Detect(emitters []*Emitter, buckets []*Bucket, out []Arrival) []Arrival {
	if d.contacts == nil {
		d.contacts = make(map[contactKey]bool)
		d.next = make(map[contactKey]bool)
	}
	clear(d.next)
	for _, e := range emitters {
		if !e.Alive() {
			continue
		}
		for _, b := range buckets {
			if !b.Alive() {
				continue
			}
			if e.Position.Dist(b.Position) > b.Radius+d.EmitterRadius {
				continue
			}
			k := contactKey{e, b}
			d.next[k] = true
			if !d.contacts[k] {
				out = append(out, Arrival{Emitter: e, Bucket: b})
				break
			}
		}
	}
	d.contacts, d.next = d.next, d.contacts
	return out
}
