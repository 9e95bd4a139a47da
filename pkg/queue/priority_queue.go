package queue

import (
	"container/heap"
	"strings"
)

type MinHeap[T Priorizable] struct {
	Queue  PriorityQueue // hold the priority queue
	pushes uint64        // number of pushed items, used as insertion sequence
}

func NewMinHeap[T Priorizable](items []T) *MinHeap[T] {
	h := &MinHeap[T]{}
	h.Queue = make(PriorityQueue, len(items))
	for i, item := range items {
		h.Queue[i] = item
		item.SetIndex(i)
		item.SetSequence(h.pushes)
		h.pushes++
	}
	heap.Init(&h.Queue)
	return h
}

// Items with equal priority are popped in insertion order
type Priorizable interface {
	Priority() float64
	Sequence() uint64
	SetSequence(sequence uint64)
	Index() int
	SetIndex(index int)
	String() string
}

// Implements heap.Interface
type PriorityQueue []Priorizable

func (q PriorityQueue) Len() int { return len(q) }
func (q PriorityQueue) Less(i, j int) bool {
	if q[i].Priority() == q[j].Priority() {
		return q[i].Sequence() < q[j].Sequence()
	}
	return q[i].Priority() < q[j].Priority()
}
func (q PriorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].SetIndex(i)
	q[j].SetIndex(j)
}
func (q *PriorityQueue) Push(item any) {
	n := len(*q)
	pqItem := item.(Priorizable)
	pqItem.SetIndex(n)
	*q = append(*q, pqItem)
}
func (q *PriorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.SetIndex(-1) // for safety
	*q = old[:n-1]
	return item
}

func (h *MinHeap[T]) Len() int { return h.Queue.Len() }
func (h *MinHeap[T]) Push(item T) {
	item.SetSequence(h.pushes)
	h.pushes++
	heap.Push(&h.Queue, item)
}
func (h *MinHeap[T]) Pop() T        { return heap.Pop(&h.Queue).(T) }
func (h *MinHeap[T]) Update(item T) { heap.Fix(&h.Queue, item.Index()) }
func (h *MinHeap[T]) Peek() T       { return h.Queue[0].(T) }
func (h *MinHeap[T]) PeekAt(index int) T {
	if index >= h.Len() {
		panic("index out of bounds")
	}
	return h.Queue[index].(T)
}
func (h *MinHeap[T]) Remove(index int) { heap.Remove(&h.Queue, index) }
func (h *MinHeap[T]) String() string {
	var sb strings.Builder
	for i := 0; i < h.Len(); i++ {
		item := h.PeekAt(i)
		sb.WriteString(item.String())
	}
	return sb.String()
}
