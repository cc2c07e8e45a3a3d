package material

// Recorder is a Sink that keeps every write in arrival order.
// The zero value is ready to use.
type Recorder struct {
	writes []Uniform
}

// SetVector implements Sink.
func (r *Recorder) SetVector(name string, v Vec4) {
	r.writes = append(r.writes, VectorUniform(name, v))
}

// SetFloat implements Sink.
func (r *Recorder) SetFloat(name string, v float32) {
	r.writes = append(r.writes, FloatUniform(name, v))
}

// SetColor implements Sink.
func (r *Recorder) SetColor(name string, c Color) {
	r.writes = append(r.writes, ColorUniform(name, c))
}

// SetTexture implements Sink.
func (r *Recorder) SetTexture(name string, t Texture) {
	r.writes = append(r.writes, TextureUniform(name, t))
}

// Writes returns a copy of the recorded writes.
func (r *Recorder) Writes() []Uniform {
	out := make([]Uniform, len(r.writes))
	copy(out, r.writes)
	return out
}

// Len returns the number of recorded writes.
func (r *Recorder) Len() int { return len(r.writes) }

// Count returns how many times name was written.
func (r *Recorder) Count(name string) int {
	n := 0
	for i := range r.writes {
		if r.writes[i].Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent write to name.
func (r *Recorder) Last(name string) (Uniform, bool) {
	for i := len(r.writes) - 1; i >= 0; i-- {
		if r.writes[i].Name == name {
			return r.writes[i], true
		}
	}
	return Uniform{}, false
}

// Names returns the written names in order, including repeats.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.writes))
	for i := range r.writes {
		out[i] = r.writes[i].Name
	}
	return out
}

// Reset discards all recorded writes.
func (r *Recorder) Reset() { r.writes = r.writes[:0] }
