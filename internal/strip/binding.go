package strip

// Binding is an externally owned selection index that a strip both reads and writes.
type Binding interface {
	Get() int
	Set(int)
}

// IntBinding binds a strip to a caller-owned int.
type IntBinding struct {
	p *int
}

var _ Binding = IntBinding{}

// BindInt returns a Binding over *p. A nil p gets private storage.
func BindInt(p *int) IntBinding {
	if p == nil {
		p = new(int)
	}
	return IntBinding{p: p}
}

func (b IntBinding) Get() int  { return *b.p }
func (b IntBinding) Set(v int) { *b.p = v }

// changeGuard is an edge trigger: observe reports true only when v differs from the
// last value it saw.
type changeGuard struct {
	last int
}

func newChangeGuard(initial int) changeGuard {
	return changeGuard{last: initial}
}

func (g *changeGuard) observe(v int) bool {
	if v == g.last {
		return false
	}
	g.last = v
	return true
}
