package task

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultTodayCap is used whenever a configured cap is missing or unusable.
const DefaultTodayCap = 3

// ParseTodayCap normalizes a raw cap value to a positive integer.
// Anything unusable yields DefaultTodayCap.
func ParseTodayCap(raw any) int {
	n, ok := ParseCap(raw)
	if !ok {
		return DefaultTodayCap
	}
	return n
}

// ParseCap reads a positive integer cap from raw input.
// Strings are read up to the first non-digit, so "5 items" parses as 5.
func ParseCap(raw any) (int, bool) {
	var parsed int64
	var ok bool

	switch v := raw.(type) {
	case int:
		parsed, ok = int64(v), true
	case int32:
		parsed, ok = int64(v), true
	case int64:
		parsed, ok = v, true
	case float64:
		if !math.IsNaN(v) && math.Abs(v) <= math.MaxInt32 {
			parsed, ok = int64(v), true
		}
	case string:
		parsed, ok = parseLeadingInt(v)
	case nil:
		ok = false
	default:
		parsed, ok = parseLeadingInt(fmt.Sprint(v))
	}

	if !ok || parsed <= 0 || parsed > math.MaxInt32 {
		return 0, false
	}
	return int(parsed), true
}

func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ComputeTodayProjection selects the bounded Today view from a task collection.
// Items beyond the cap are dropped from Items but still counted in TotalEligible.
func ComputeTodayProjection(tasks []Task, rawCap any) Projection {
	limit := ParseTodayCap(rawCap)

	eligible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.TodayIncluded && IsValidRecord(t) {
			eligible = append(eligible, t)
		}
	}

	SortNewestFirst(eligible)

	n := len(eligible)
	if n > limit {
		n = limit
	}
	items := make([]Task, n)
	for i := 0; i < n; i++ {
		item := eligible[i]
		item.Area = item.AreaOrInbox()
		items[i] = item
	}

	return Projection{
		Items:         items,
		TotalEligible: len(eligible),
		Cap:           limit,
	}
}

// SortNewestFirst orders tasks by creation time descending, then id ascending.
// A zero CreatedAt sorts as the oldest possible time.
func SortNewestFirst(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := createdMillis(tasks[i]), createdMillis(tasks[j])
		if a == b {
			return tasks[i].ID < tasks[j].ID
		}
		return a > b
	})
}

func createdMillis(t Task) int64 {
	if t.CreatedAt.IsZero() {
		return 0
	}
	return t.CreatedAt.UnixMilli()
}
