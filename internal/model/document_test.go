package model

import (
	"encoding/json"
	"testing"
)

func TestComponentEntry_UnmarshalJSON_KnownType(t *testing.T) {
	data := []byte(`{
		"id": "error-rate",
		"type": "MetricCard",
		"props": {"label": "Error rate", "value": "4.2", "unit": "%", "trend": "up"},
		"priority": 1,
		"visibility": "visible"
	}`)

	var entry ComponentEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if entry.ID != "error-rate" {
		t.Errorf("id = %s, want error-rate", entry.ID)
	}
	props, ok := entry.Props.(MetricProps)
	if !ok {
		t.Fatalf("props type = %T, want MetricProps", entry.Props)
	}
	if props.Label != "Error rate" || props.Trend != "up" {
		t.Errorf("props = %+v", props)
	}
	if entry.Props.Component() != TypeMetricCard {
		t.Errorf("component = %s, want %s", entry.Props.Component(), TypeMetricCard)
	}
}

func TestComponentEntry_UnmarshalJSON_UnknownType(t *testing.T) {
	data := []byte(`{
		"id": "mystery",
		"type": "HoloDeck",
		"props": {"anything": true},
		"priority": 2,
		"visibility": "visible"
	}`)

	var entry ComponentEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("unknown type should not be a decode error: %v", err)
	}
	if entry.Type != "HoloDeck" {
		t.Errorf("type = %s, want HoloDeck", entry.Type)
	}
	if entry.Props != nil {
		t.Errorf("props = %v, want nil for unknown type", entry.Props)
	}
}

func TestComponentEntry_UnmarshalJSON_NullProps(t *testing.T) {
	data := []byte(`{"id": "a", "type": "MetricCard", "props": null, "priority": 1, "visibility": "visible"}`)

	var entry ComponentEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry.Props != nil {
		t.Errorf("props = %v, want nil", entry.Props)
	}
}

func TestComponentEntry_UnmarshalJSON_BadProps(t *testing.T) {
	data := []byte(`{"id": "a", "type": "MetricCard", "props": {"delta": "not a number"}, "priority": 1, "visibility": "visible"}`)

	var entry ComponentEntry
	if err := json.Unmarshal(data, &entry); err == nil {
		t.Error("expected error for mistyped props payload")
	}
}

func TestKnownEnums(t *testing.T) {
	if !KnownIntent(IntentIncident) || KnownIntent("panic") {
		t.Error("KnownIntent misclassifies")
	}
	if !KnownUrgency(UrgencyCritical) || KnownUrgency("super") {
		t.Error("KnownUrgency misclassifies")
	}
	if !KnownVisibility(VisibilityConditional) || KnownVisibility("maybe") {
		t.Error("KnownVisibility misclassifies")
	}
}

func TestComponentTypes_MatchDecoders(t *testing.T) {
	for _, ct := range ComponentTypes() {
		if _, ok := propsDecoders[ct]; !ok {
			t.Errorf("no props decoder for %s", ct)
		}
	}
	if len(ComponentTypes()) != len(propsDecoders) {
		t.Errorf("types = %d, decoders = %d", len(ComponentTypes()), len(propsDecoders))
	}
}
