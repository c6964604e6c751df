//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package display

type stubBackend struct{}

func newBackend() Backend {
	return stubBackend{}
}

func (stubBackend) Monitors() ([]Monitor, error) {
	return nil, ErrUnsupported
}
