//go:build !unix

package memory

// The Go collector does not move heap objects, so a plain slice keeps
// stable addresses for the life of the arena.
func mmap(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func munmap(data []byte) error {
	return nil
}
