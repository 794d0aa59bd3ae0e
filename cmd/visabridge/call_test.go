package main

import (
	"reflect"
	"testing"

	"github.com/10aParikh/visabridge/tools"
)

func specByName(t *testing.T, name string) tools.Spec {
	t.Helper()
	s, ok := registryFromCatalog().Lookup(name)
	if !ok {
		t.Fatalf("no such tool: %s", name)
	}
	return s
}

func TestParseArgValueByDeclaredType(t *testing.T) {
	atm := specByName(t, "find_nearby_atms")
	if v, err := parseArgValue(atm, "latitude", "37.7749"); err != nil || v != 37.7749 {
		t.Fatalf("latitude: %v %v", v, err)
	}
	if _, err := parseArgValue(atm, "latitude", "north"); err == nil {
		t.Fatalf("expected error for non-numeric latitude")
	}
	if v, err := parseArgValue(atm, "distance_unit", "mi"); err != nil || v != "mi" {
		t.Fatalf("distance_unit: %v %v", v, err)
	}

	// A PAN stays a string even though it looks numeric.
	search := specByName(t, "vsm_search")
	if v, err := parseArgValue(search, "pan", "4111111111111111"); err != nil || v != "4111111111111111" {
		t.Fatalf("pan: %v %v", v, err)
	}

	update := specByName(t, "vsps_update_stop")
	v, err := parseArgValue(update, "updates", `{"status":"paused"}`)
	if err != nil {
		t.Fatalf("updates: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"status": "paused"}) {
		t.Fatalf("updates parsed wrong: %v", v)
	}

	// Undeclared keys pass through untouched.
	if v, err := parseArgValue(search, "extra", "123"); err != nil || v != "123" {
		t.Fatalf("extra: %v %v", v, err)
	}
}
