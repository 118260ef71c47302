package fsops

// Deleter abstracts filesystem delete operations
// Enables mocking in tests to prove exactly which paths get removed
type Deleter interface {
	Remove(path string) error
}
