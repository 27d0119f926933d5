package autodiff

import "container/heap"

// creatorQueue is the backward worklist: a max-heap on generation.
// Ties are broken by insertion order so traversal is deterministic.
type creatorQueue struct {
	items []queuedCreator
	next  int // insertion counter
}

type queuedCreator struct {
	creator *Creator
	seq     int
}

func (q *creatorQueue) Len() int { return len(q.items) }

func (q *creatorQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.creator.generation != b.creator.generation {
		return a.creator.generation > b.creator.generation
	}
	return a.seq < b.seq
}

func (q *creatorQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *creatorQueue) Push(x any) { q.items = append(q.items, x.(queuedCreator)) }

func (q *creatorQueue) Pop() any {
	last := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return last
}

// push adds c to the worklist.
func (q *creatorQueue) push(c *Creator) {
	heap.Push(q, queuedCreator{creator: c, seq: q.next})
	q.next++
}

// pop removes the Creator with the largest generation.
func (q *creatorQueue) pop() *Creator {
	return heap.Pop(q).(queuedCreator).creator
}
