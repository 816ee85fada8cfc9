package queue

// Policy selects how Pop chooses among pushed items.
type Policy int

const (
	// BreadthFirst pushes to the tail, pops from the head: memory grows
	// with frontier width; favors producing early completions.
	BreadthFirst Policy = iota

	// DepthFirst pushes to the tail, pops from the tail: memory grows with
	// search depth; the usual choice for large host graphs.
	DepthFirst
)

// Queue is the capability set the search engine consumes: push, pop, and
// emptiness/size queries. Implementations make no ordering guarantee across
// equally-positioned items beyond what their Policy implies.
type Queue[T any] interface {
	// Push enqueues item.
	Push(item T)

	// Pop removes and returns one item. ok is false if the queue was empty.
	Pop() (item T, ok bool)

	// Empty reports whether the queue currently holds no items.
	Empty() bool

	// Len reports the current number of items.
	Len() int
}
