package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type indexRangeError struct {
	name  string
	index int
	size  int
}

func (e indexRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range (list has %d items)", e.name, e.index, e.size)
}
