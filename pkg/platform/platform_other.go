//go:build !windows

package platform

func SetAppID(string) error {
	return ErrUnsupported
}

func EnableDPIAwareness() error {
	return ErrUnsupported
}
