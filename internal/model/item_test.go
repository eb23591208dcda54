package model

import (
	"testing"
	"time"
)

func TestItem_DisplayLabel(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		text     string
		expected string
	}{
		{"Docs", "https://docs.example.com", "", "Docs"},
		{"", "https://docs.example.com", "", "https://docs.example.com"},
		{"", "", "plain clipboard text", "plain clipboard text"},
		{"", "", "first line\nsecond line", "first line second line"},
		{"", "", "\ttabbed\r\nand wrapped\n", "tabbed  and wrapped"},
		{"Named", "https://example.com", "ignored text", "Named"},
	}

	for _, test := range tests {
		item := Item{Name: test.name, URL: test.url, Text: test.text}
		result := item.DisplayLabel()
		if result != test.expected {
			t.Errorf("DisplayLabel() with name=%q url=%q text=%q = %q, expected %q",
				test.name, test.url, test.text, result, test.expected)
		}
	}
}

func TestItem_Apply(t *testing.T) {
	text := "updated"
	done := true

	item := Item{ID: "a1", Text: "original", Completed: false}
	item.Apply(ItemPatch{Text: &text})
	if item.Text != "updated" {
		t.Errorf("Apply() text patch: got %q, expected %q", item.Text, "updated")
	}
	if item.Completed {
		t.Error("Apply() text patch must not touch Completed")
	}

	item.Apply(ItemPatch{Completed: &done})
	if !item.Completed {
		t.Error("Apply() completed patch: expected Completed=true")
	}
	if item.Text != "updated" {
		t.Errorf("Apply() completed patch must not touch Text, got %q", item.Text)
	}

	item.Apply(ItemPatch{})
	if item.Text != "updated" || !item.Completed {
		t.Error("Apply() with empty patch must leave the item unchanged")
	}
}

func TestItem_CreatedTime(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	item := Item{CreatedAt: now.UnixMilli()}

	if !item.CreatedTime().Equal(now) {
		t.Errorf("CreatedTime() = %v, expected %v", item.CreatedTime(), now)
	}
}
