package components

import (
	"strings"
	"testing"
)

func TestTabsNavigation(t *testing.T) {
	tabs := NewTabs("Overview", "By decade", "By conference", "By authorship")

	if tabs.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", tabs.Active())
	}

	tabs.Next()
	tabs.Next()
	if tabs.Active() != 2 {
		t.Errorf("after two Next() Active() = %d, want 2", tabs.Active())
	}

	tabs.Next()
	tabs.Next()
	if tabs.Active() != 0 {
		t.Errorf("Next() should wrap, Active() = %d", tabs.Active())
	}

	tabs.Prev()
	if tabs.Active() != 3 {
		t.Errorf("Prev() should wrap, Active() = %d", tabs.Active())
	}

	if !tabs.Set(1) || tabs.Active() != 1 {
		t.Errorf("Set(1) failed, Active() = %d", tabs.Active())
	}
	if tabs.Set(4) || tabs.Set(-1) {
		t.Error("Set() should reject out of range indexes")
	}
	if tabs.Active() != 1 {
		t.Errorf("rejected Set() changed Active() to %d", tabs.Active())
	}
}

func TestTabsEmpty(t *testing.T) {
	tabs := NewTabs()
	tabs.Next()
	tabs.Prev()
	if tabs.Active() != 0 || tabs.Len() != 0 {
		t.Error("empty tabs should stay at 0")
	}
}

func TestTabsView(t *testing.T) {
	tabs := NewTabs("Overview", "By decade")
	tabs.SetWidth(40)

	view := tabs.View()
	for _, want := range []string{"1 Overview", "2 By decade", "─"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}
}
