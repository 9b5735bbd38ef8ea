package Queues

// Queue is a container with one removal end. Pop on an empty Queue returns *EmptyQueueError.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

var (
	_ Queue[int] = (*Stack[int])(nil)
	_ Queue[int] = (*LinkedQueue[int])(nil)
)
