//go:build !unix

package proxy

// RaiseFileLimit is a no-op on platforms without RLIMIT_NOFILE.
func RaiseFileLimit() error {
	return nil
}
