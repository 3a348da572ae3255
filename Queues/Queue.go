package Queues

type Queue[T any] interface {
	Push(item T)
	//Pop the item at the head. Returns *EmptyQueueError if there's nothing.
	Pop() (T, error)
	//Peek at the item at the head without removing it.
	Peek() (T, bool)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
