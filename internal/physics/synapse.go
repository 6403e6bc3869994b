package physics

// SynapseDetector flags branch endpoints that land within Radius of an
// endpoint already seen since the last Reset. It is O(n²).
type SynapseDetector struct {
	Radius    float64
	endpoints []Vec2
}

// Reset forgets every endpoint seen so far.
func (d *SynapseDetector) Reset() { d.endpoints = d.endpoints[:0] }

// Observe records p and reports whether it synapses with an earlier one.
func (d *SynapseDetector) Observe(p Vec2) bool {
	hit := false
	for _, e := range d.endpoints {
		if p.Dist(e) < d.Radius {
			hit = true
			break
		}
	}
	d.endpoints = append(d.endpoints, p)
	return hit
}

// Count returns the number of endpoints seen since the last Reset.
func (d *SynapseDetector) Count() int { return len(d.endpoints) }
