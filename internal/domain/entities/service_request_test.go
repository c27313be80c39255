package entities

import (
	"testing"
	"time"
)

func TestServiceRequest_AppendTimeline(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sr := ServiceRequest{
		Status: RequestStatusPending,
		Timeline: []TimelineEntry{
			{Timestamp: created, Status: RequestStatusPending, Actor: "user@example.com"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	at := created.Add(time.Hour)
	sr.AppendTimeline(RequestStatusCollected, "operator", at)

	if sr.Status != RequestStatusCollected {
		t.Fatalf("expected status COLLECTED, got %s", sr.Status)
	}
	if !sr.UpdatedAt.Equal(at) {
		t.Fatalf("expected updated_at %v, got %v", at, sr.UpdatedAt)
	}
	if len(sr.Timeline) != 2 {
		t.Fatalf("expected 2 timeline entries, got %d", len(sr.Timeline))
	}
	last := sr.LastTimelineEntry()
	if last.Status != RequestStatusCollected || last.Actor != "operator" || !last.Timestamp.Equal(at) {
		t.Fatalf("unexpected last entry: %+v", last)
	}
	if sr.Timeline[0].Actor != "user@example.com" {
		t.Fatalf("existing entries must not change: %+v", sr.Timeline[0])
	}
}

func TestServiceRequest_LastTimelineEntryEmpty(t *testing.T) {
	var sr ServiceRequest
	if got := sr.LastTimelineEntry(); got != (TimelineEntry{}) {
		t.Fatalf("expected zero entry, got %+v", got)
	}
}

func TestParseClosedSets(t *testing.T) {
	if _, ok := ParseExtinguisherType("CO2"); !ok {
		t.Fatalf("expected CO2 to parse")
	}
	if _, ok := ParseExtinguisherType("FOAM"); ok {
		t.Fatalf("expected FOAM to be rejected")
	}
	if _, ok := ParseExtinguisherCondition("DISCHARGED"); !ok {
		t.Fatalf("expected DISCHARGED to parse")
	}
	if _, ok := ParseExtinguisherCondition("BROKEN"); ok {
		t.Fatalf("expected BROKEN to be rejected")
	}
	if _, ok := ParseTimeSlot("AFTERNOON"); !ok {
		t.Fatalf("expected AFTERNOON to parse")
	}
	if _, ok := ParseTimeSlot("NIGHT"); ok {
		t.Fatalf("expected NIGHT to be rejected")
	}
}
