package model

import "sort"

// Filter selects which items the list shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterToday
)

// Toggle flips between all items and today's items.
func (f Filter) Toggle() Filter {
	if f == FilterToday {
		return FilterAll
	}
	return FilterToday
}

// Match reports whether it passes the filter on the given day.
func (f Filter) Match(it *Item, today Date) bool {
	if it == nil {
		return false
	}
	if f == FilterToday {
		return it.Deadline == today
	}
	return true
}

func (f Filter) String() string {
	if f == FilterToday {
		return "today"
	}
	return "all"
}

// View filters items and sorts the result by deadline, ascending.
// The sort is stable, so equal deadlines keep their store order.
// items itself is left untouched.
func View(items []*Item, f Filter, today Date) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		if f.Match(it, today) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline.Before(out[j].Deadline)
	})
	return out
}

// IndexOf returns the position of it in items by identity, or -1.
func IndexOf(items []*Item, it *Item) int {
	if it == nil {
		return -1
	}
	for i, x := range items {
		if x == it {
			return i
		}
	}
	return -1
}

// Urgency classifies a deadline relative to today for highlighting.
type Urgency int

const (
	DueLater Urgency = iota
	DueToday
	DueTomorrow
)

func UrgencyOf(it *Item, today Date) Urgency {
	switch it.Deadline {
	case today:
		return DueToday
	case today.AddDays(1):
		return DueTomorrow
	}
	return DueLater
}
