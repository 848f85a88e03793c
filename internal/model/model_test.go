package model

import (
	"encoding/json"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	d := mustDate(t, "01-02-2030")
	if d != (Date{Year: 2030, Month: time.February, Day: 1}) {
		t.Fatalf("got %+v", d)
	}
	if d.String() != "01-02-2030" {
		t.Errorf("String() = %q", d.String())
	}
	if d.Long() != "February 1, 2030" {
		t.Errorf("Long() = %q", d.Long())
	}

	for _, bad := range []string{"", "2030-02-01", "32-01-2030", "1-2-2030x"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := mustDate(t, "31-12-2029")
	if got := d.AddDays(1).String(); got != "01-01-2030" {
		t.Errorf("AddDays(1) = %s", got)
	}
	if got := d.AddDays(-31).String(); got != "30-11-2029" {
		t.Errorf("AddDays(-31) = %s", got)
	}
	if got := mustDate(t, "15-01-2030").AddMonths(1).String(); got != "15-02-2030" {
		t.Errorf("AddMonths(1) = %s", got)
	}

	a, b := mustDate(t, "01-01-2030"), mustDate(t, "02-01-2030")
	if !a.Before(b) || b.Before(a) || a.Compare(a) != 0 || b.Compare(a) != 1 {
		t.Error("ordering is inconsistent")
	}
	if !mustDate(t, "01-12-2029").Before(mustDate(t, "01-01-2030")) {
		t.Error("year should dominate month")
	}
}

func TestTodayUsesLocalCalendarDay(t *testing.T) {
	now := time.Date(2030, time.March, 5, 23, 59, 0, 0, time.Local)
	if got := Today(now); got != (Date{2030, time.March, 5}) {
		t.Errorf("Today = %+v", got)
	}
}

func TestDateJSON(t *testing.T) {
	it := NewItem("A", "x", mustDate(t, "07-08-2030"))
	b, err := json.Marshal(it)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"description":"A","detail":"x","deadline":"2030-08-07"}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
	var back Item
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != *it {
		t.Errorf("got %+v", back)
	}
}

func TestViewFilterToday(t *testing.T) {
	today := mustDate(t, "10-05-2030")
	tomorrow := today.AddDays(1)

	tests := []struct {
		name  string
		items []*Item
		want  int
	}{
		{"empty", nil, 0},
		{"none today", []*Item{NewItem("a", "", tomorrow)}, 0},
		{"one today", []*Item{NewItem("a", "", tomorrow), NewItem("b", "", today)}, 1},
		{"many today", []*Item{NewItem("a", "", today), NewItem("b", "", tomorrow), NewItem("c", "", today)}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := View(tc.items, FilterToday, today)
			if len(got) != tc.want {
				t.Fatalf("got %d items, want %d", len(got), tc.want)
			}
			for _, it := range got {
				if it.Deadline != today {
					t.Errorf("%s is not due today", it.Description)
				}
			}
			if all := View(tc.items, FilterAll, today); len(all) != len(tc.items) {
				t.Errorf("FilterAll returned %d of %d", len(all), len(tc.items))
			}
		})
	}
}

func TestViewSortIsStable(t *testing.T) {
	d1, d2, d3 := mustDate(t, "01-01-2030"), mustDate(t, "02-01-2030"), mustDate(t, "03-01-2030")
	items := []*Item{
		NewItem("c1", "", d3),
		NewItem("a1", "", d1),
		NewItem("b1", "", d2),
		NewItem("a2", "", d1),
		NewItem("c2", "", d3),
		NewItem("a3", "", d1),
	}
	got := View(items, FilterAll, d1)
	want := []string{"a1", "a2", "a3", "b1", "c1", "c2"}
	for i, w := range want {
		if got[i].Description != w {
			t.Errorf("index %d: got %s, want %s", i, got[i].Description, w)
		}
	}
	if items[0].Description != "c1" {
		t.Error("View must not reorder its input")
	}
}

func TestFilterToggle(t *testing.T) {
	if FilterAll.Toggle() != FilterToday || FilterToday.Toggle() != FilterAll {
		t.Error("Toggle should flip between all and today")
	}
}

func TestUrgencyAndIndexOf(t *testing.T) {
	today := mustDate(t, "10-05-2030")
	a := NewItem("a", "", today)
	b := NewItem("b", "", today.AddDays(1))
	c := NewItem("c", "", today.AddDays(2))
	if UrgencyOf(a, today) != DueToday || UrgencyOf(b, today) != DueTomorrow || UrgencyOf(c, today) != DueLater {
		t.Error("unexpected urgency")
	}

	twin := NewItem("a", "", today)
	items := []*Item{a, b}
	if IndexOf(items, b) != 1 || IndexOf(items, twin) != -1 || IndexOf(items, nil) != -1 {
		t.Error("IndexOf must compare by identity")
	}
}
