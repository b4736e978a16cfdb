//go:build !amd64 && !arm64

package mvec

func init() {
	// Other architectures fall back to scalar mode for now.
	setScalarMode()
}
