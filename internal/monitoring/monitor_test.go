package monitoring

import (
	"testing"
)

func TestMonitor_Stats(t *testing.T) {
	m := NewMonitor()
	m.RecordAction("addFood")
	m.RecordAction("addFood")
	m.RecordAction("toggleDoor")

	stats := m.Stats()

	actions, ok := stats["actions"].(map[string]int64)
	if !ok {
		t.Fatalf("Expected 'actions' to be a map, got %T", stats["actions"])
	}
	if actions["addFood"] != 2 {
		t.Errorf("Expected addFood count 2, got %d", actions["addFood"])
	}
	if stats["actions_total"] != int64(3) {
		t.Errorf("Expected actions_total 3, got %v", stats["actions_total"])
	}

	// Check uptime presence
	if _, ok := stats["uptime_seconds"]; !ok {
		t.Errorf("Expected 'uptime_seconds' to be present in stats, but it was not")
	}
}

func TestMonitor_ActionCount(t *testing.T) {
	m := NewMonitor()
	if m.ActionCount("deleteFood") != 0 {
		t.Errorf("Expected zero count for unrecorded action")
	}
	m.RecordAction("deleteFood")
	if m.ActionCount("deleteFood") != 1 {
		t.Errorf("Expected count 1 after recording")
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordAction("addFood")
	m.Reset()
	if m.ActionCount("addFood") != 0 {
		t.Errorf("Expected counts cleared after Reset")
	}
}
