package prompt

import (
	"reflect"
	"testing"
	"time"
)

func TestNewBatch_Empty(t *testing.T) {
	b := NewBatch("b1", "s1", nil, 42.5, time.Now())

	if len(b.Prompts) != 0 {
		t.Errorf("Prompts = %v, want empty", b.Prompts)
	}
	if b.TotalEffortHours != 0 {
		t.Errorf("TotalEffortHours = %d, want 0", b.TotalEffortHours)
	}
	if len(b.DimensionsCovered) != 0 {
		t.Errorf("DimensionsCovered = %v, want empty", b.DimensionsCovered)
	}
	if b.ScoreAtGeneration != 42.5 {
		t.Errorf("ScoreAtGeneration = %v", b.ScoreAtGeneration)
	}
}

func TestNewBatch_OrdersByPriorityAscending(t *testing.T) {
	prompts := []Prompt{
		{ID: "medium", DimensionKey: "finance", Priority: PriorityMedium, EstimatedEffortHours: 6},
		{ID: "critical", DimensionKey: "arch_sec", Priority: PriorityCritical, EstimatedEffortHours: 18},
		{ID: "low", DimensionKey: "strategy", Priority: PriorityLow, EstimatedEffortHours: 4},
	}

	b := NewBatch("b1", "s1", prompts, 50, time.Now())

	want := []string{"critical", "medium", "low"}
	for i, w := range want {
		if b.Prompts[i].ID != w {
			t.Errorf("position %d = %s, want %s", i, b.Prompts[i].ID, w)
		}
	}
	if b.TotalEffortHours != 28 {
		t.Errorf("TotalEffortHours = %d, want 28", b.TotalEffortHours)
	}
	if !reflect.DeepEqual(b.DimensionsCovered, []string{"arch_sec", "finance", "strategy"}) {
		t.Errorf("DimensionsCovered = %v", b.DimensionsCovered)
	}
}

func TestNewBatch_StableForEqualPriorities(t *testing.T) {
	prompts := []Prompt{
		{ID: "first", Priority: PriorityHigh},
		{ID: "second", Priority: PriorityHigh},
	}
	b := NewBatch("b1", "s1", prompts, 0, time.Now())
	if b.Prompts[0].ID != "first" || b.Prompts[1].ID != "second" {
		t.Errorf("equal-priority prompts reordered: %s, %s", b.Prompts[0].ID, b.Prompts[1].ID)
	}
}

func TestNewBatch_DedupesDimensions(t *testing.T) {
	prompts := []Prompt{
		{ID: "a", DimensionKey: "arch_sec", Priority: PriorityCritical},
		{ID: "b", DimensionKey: "arch_sec", Priority: PriorityHigh},
	}
	b := NewBatch("b1", "s1", prompts, 0, time.Now())
	if len(b.DimensionsCovered) != 1 {
		t.Errorf("DimensionsCovered = %v, want one entry", b.DimensionsCovered)
	}
}

func TestNewBatch_DoesNotMutateInput(t *testing.T) {
	prompts := []Prompt{
		{ID: "low", Priority: PriorityLow},
		{ID: "crit", Priority: PriorityCritical},
	}
	NewBatch("b1", "s1", prompts, 0, time.Now())
	if prompts[0].ID != "low" {
		t.Error("input slice was reordered")
	}
}
