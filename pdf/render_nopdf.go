//go:build nopdf

package pdf

// Available reports whether PDF rendering is compiled in.
const Available = false

// Render always fails with ErrUnavailable in nopdf builds.
func Render(RenderRequest) error {
	return ErrUnavailable
}
