package app

import (
	"testing"
	"time"

	"mvp-challenge/internal/domain"
)

func TestSelectYearsIsDeterministic(t *testing.T) {
	years := domain.DefaultAwardTable().Years()
	seed := DailySeed(time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC))

	first := SelectYears(seed, years)
	second := SelectYears(seed, years)

	if len(first) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("selection not reproducible at %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestSelectYearsDistinctSubset(t *testing.T) {
	table := domain.DefaultAwardTable()
	selected := SelectYears(4096, table.Years())

	seen := make(map[int]bool)
	for _, year := range selected {
		if seen[year] {
			t.Fatalf("duplicate year %d in selection", year)
		}
		seen[year] = true
		if _, ok := table.Winner(year); !ok {
			t.Fatalf("selected year %d not in the award table", year)
		}
	}
}

func TestSelectYearsSmallPool(t *testing.T) {
	selected := SelectYears(7, []int{1999, 2000, 2001})
	if len(selected) != 3 {
		t.Fatalf("expected the whole pool, got %d years", len(selected))
	}
	seen := make(map[int]bool)
	for _, year := range selected {
		seen[year] = true
	}
	for _, year := range []int{1999, 2000, 2001} {
		if !seen[year] {
			t.Fatalf("year %d missing from small-pool selection", year)
		}
	}
}

func TestSelectYearsDifferentSeedsUsuallyDiffer(t *testing.T) {
	years := domain.DefaultAwardTable().Years()
	a := SelectYears(100, years)
	b := SelectYears(101, years)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected seeds 100 and 101 to produce different orderings")
	}
}
