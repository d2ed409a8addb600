package platforms

import (
	"container/heap"
	"sort"
)

// Assignment places one event on a platform. Platforms are numbered from 1.
type Assignment struct {
	Event    Event
	Platform int
}

// Assign allocates a platform to every event in the schedule.
//
// Unlike [MinPlatforms], Assign keeps each arrival paired with its own
// departure. Events are placed in arrival order; a platform becomes free only
// once its occupant's departure is strictly earlier than the next arrival, and
// the lowest-numbered free platform is always reused first. The number of
// distinct platforms used equals [Schedule.MinPlatforms].
//
// Assignments are returned in the schedule's event order.
func (s Schedule) Assign() []Assignment {
	order := make([]int, len(s.events))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ea, eb := s.events[order[a]], s.events[order[b]]
		if ea.arrival != eb.arrival {
			return ea.arrival < eb.arrival
		}
		return ea.departure < eb.departure
	})

	out := make([]Assignment, len(s.events))
	busy := &occupiedHeap{}
	free := &platformHeap{}
	opened := 0

	for _, idx := range order {
		ev := s.events[idx]

		for busy.Len() > 0 && (*busy)[0].departure < ev.arrival {
			released := heap.Pop(busy).(occupied)
			heap.Push(free, released.platform)
		}

		var platform int
		if free.Len() > 0 {
			platform = heap.Pop(free).(int)
		} else {
			opened++
			platform = opened
		}

		heap.Push(busy, occupied{departure: ev.departure, platform: platform})
		out[idx] = Assignment{Event: ev, Platform: platform}
	}

	return out
}

// occupied is a platform held until departure.
type occupied struct {
	departure int
	platform  int
}

// occupiedHeap orders held platforms by earliest departure.
type occupiedHeap []occupied

func (h occupiedHeap) Len() int { return len(h) }
func (h occupiedHeap) Less(i, j int) bool {
	if h[i].departure != h[j].departure {
		return h[i].departure < h[j].departure
	}
	return h[i].platform < h[j].platform
}
func (h occupiedHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *occupiedHeap) Push(x any)   { *h = append(*h, x.(occupied)) }
func (h *occupiedHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// platformHeap orders free platforms by number.
type platformHeap []int

func (h platformHeap) Len() int           { return len(h) }
func (h platformHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h platformHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *platformHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *platformHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
