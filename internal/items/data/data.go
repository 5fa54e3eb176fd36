package data

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexOf returns the position of the item with the given id, or -1.
func IndexOf(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItem replaces the item sharing updated's id. found is false when
// no element matched; the slice is then returned untouched.
func UpdateItem(items []Item, updated Item) ([]Item, bool) {
	i := IndexOf(items, updated.ID)
	if i < 0 {
		return items, false
	}
	items[i] = updated
	return items, true
}

// DeleteItem removes the first item with the given id and returns the updated slice.
func DeleteItem(items []Item, id string) ([]Item, bool) {
	i := IndexOf(items, id)
	if i < 0 {
		return items, false
	}
	return append(items[:i], items[i+1:]...), true
}

// Average is the mean of the scores that passed the [0,100] check.
type Average struct {
	Mean  float64
	Count int
}

// String renders "86.17% (Avg. of 3 scores)", or "N/A" when nothing was counted.
func (a Average) String() string {
	if a.Count == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%% (Avg. of %d scores)", a.Mean, a.Count)
}

// AverageOf parses each detail string (trailing '%' stripped) and averages
// the values that are numbers within [0,100]. Anything else is skipped.
func AverageOf(details []string) Average {
	total := 0.0
	count := 0
	for _, d := range details {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(d, "%", "")), 64)
		if err != nil {
			continue
		}
		if 0.0 <= v && v <= 100.0 {
			total += v
			count++
		}
	}
	if count == 0 {
		return Average{}
	}
	return Average{Mean: total / float64(count), Count: count}
}

// AverageItems averages the score details of items.
func AverageItems(items []Item) Average {
	details := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := it.Detail.(Score); ok {
			details = append(details, it.Details())
		}
	}
	return AverageOf(details)
}
