package tools

import (
	"reflect"
	"testing"
	"time"
)

var testClock = func() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func catalogSpec(t *testing.T, name string) Spec {
	t.Helper()
	for _, s := range Catalog(testClock) {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no such tool in catalog: %s", name)
	return Spec{}
}

func buildBody(t *testing.T, name string, args map[string]any) map[string]any {
	t.Helper()
	spec := catalogSpec(t, name)
	body, err := spec.Build(args)
	if err != nil {
		t.Fatalf("%s build: %v", name, err)
	}
	return body
}

func TestHelloWorldHasNoBody(t *testing.T) {
	spec := catalogSpec(t, "hello_world")
	if spec.Method != "GET" || spec.Path != "/vdp/helloworld" {
		t.Fatalf("unexpected endpoint: %s %s", spec.Method, spec.Path)
	}
	if spec.Build != nil {
		t.Fatalf("hello_world should not build a body")
	}
	if len(spec.Params) != 0 {
		t.Fatalf("hello_world should declare no params")
	}
}

func TestExchangeRateBody(t *testing.T) {
	body := buildBody(t, "get_exchange_rate", map[string]any{
		"source_currency":      "USD",
		"destination_currency": "EUR",
		"amount":               float64(100.5),
	})
	want := map[string]any{
		"sourceCurrencyCode":      "USD",
		"destinationCurrencyCode": "EUR",
		"sourceAmount":            "100.5",
	}
	if !reflect.DeepEqual(body, want) {
		t.Fatalf("body = %v, want %v", body, want)
	}
}

func TestATMLocatorBody(t *testing.T) {
	body := buildBody(t, "find_nearby_atms", map[string]any{
		"latitude":      37.7749,
		"longitude":     -122.4194,
		"distance":      defaultATMDistance,
		"distance_unit": DistanceUnitKM,
	})
	want := map[string]any{
		"wsRequestHeaderV2": map[string]any{
			"requestTs":     "2025-06-01T12:00:00Z",
			"applicationId": "VISABRIDGE",
		},
		"requestData": map[string]any{
			"location": map[string]any{
				"geocodes": map[string]any{
					"latitude":  37.7749,
					"longitude": -122.4194,
				},
			},
			"options": map[string]any{
				"range": map[string]any{
					"distance":     5,
					"distanceUnit": "km",
				},
				"findFilters": []any{},
				"sort": map[string]any{
					"primary":   "distance",
					"direction": "asc",
				},
			},
		},
	}
	if !reflect.DeepEqual(body, want) {
		t.Fatalf("body = %#v\nwant %#v", body, want)
	}
}

func TestSubscriptionBodies(t *testing.T) {
	cases := []struct {
		tool string
		args map[string]any
		want map[string]any
	}{
		{"vsm_search", map[string]any{"pan": "4111111111111111"}, map[string]any{"pan": "4111111111111111"}},
		{"vsm_merchant_details", map[string]any{"transaction_id": "T42"}, map[string]any{"transactionId": "T42"}},
		{
			"vsm_add_merchant",
			map[string]any{"pan": "4111", "merchant_id": "M1", "reason": defaultMerchantReason},
			map[string]any{"pan": "4111", "merchantId": "M1", "reason": "Subscription cancellation"},
		},
		{"vsm_cancel", map[string]any{"stop_id": "S1"}, map[string]any{"stopId": "S1"}},
		{"vsps_search_instructions", map[string]any{"pan": "4111"}, map[string]any{"pan": "4111"}},
		{
			"vsps_search_eligible",
			map[string]any{"pan": "4111", "days": defaultSearchPeriodDays},
			map[string]any{"pan": "4111", "searchPeriodDays": 90},
		},
		{"vsps_cancel_stop", map[string]any{"stop_id": "S9"}, map[string]any{"stopId": "S9"}},
		{
			"vsps_extend_stop",
			map[string]any{"stop_id": "S9", "new_end_date": "2026-01-31"},
			map[string]any{"stopId": "S9", "newEndDate": "2026-01-31"},
		},
	}
	for _, tc := range cases {
		body := buildBody(t, tc.tool, tc.args)
		if !reflect.DeepEqual(body, tc.want) {
			t.Fatalf("%s: body = %v, want %v", tc.tool, body, tc.want)
		}
	}
}

func TestAddStopLevelMatrix(t *testing.T) {
	cases := []struct {
		name string
		args map[string]any
		want map[string]any
	}{
		{
			"merchant level with id",
			map[string]any{"pan": "4111", "level": LevelMerchant, "merchant_id": "M1"},
			map[string]any{"pan": "4111", "level": "merchant", "merchantId": "M1"},
		},
		{
			"mcc level with code",
			map[string]any{"pan": "4111", "level": LevelMCC, "mcc": "5968"},
			map[string]any{"pan": "4111", "level": "mcc", "mcc": "5968"},
		},
		{
			"merchant level without id",
			map[string]any{"pan": "4111", "level": LevelMerchant},
			map[string]any{"pan": "4111", "level": "merchant"},
		},
		{
			"pan level ignores identifiers",
			map[string]any{"pan": "4111", "level": LevelPAN, "merchant_id": "M1", "mcc": "5968"},
			map[string]any{"pan": "4111", "level": "pan"},
		},
		{
			"unknown level forwarded bare",
			map[string]any{"pan": "4111", "level": "bogus", "merchant_id": "M1"},
			map[string]any{"pan": "4111", "level": "bogus"},
		},
		{
			"mcc level with merchant id only",
			map[string]any{"pan": "4111", "level": LevelMCC, "merchant_id": "M1"},
			map[string]any{"pan": "4111", "level": "mcc"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := buildBody(t, "vsps_add_stop", tc.args)
			if !reflect.DeepEqual(body, tc.want) {
				t.Fatalf("body = %v, want %v", body, tc.want)
			}
		})
	}
}

func TestUpdateStopMergesCallerFirst(t *testing.T) {
	body := buildBody(t, "vsps_update_stop", map[string]any{
		"stop_id": "S1",
		"updates": map[string]any{"status": "paused"},
	})
	want := map[string]any{"stopId": "S1", "status": "paused"}
	if !reflect.DeepEqual(body, want) {
		t.Fatalf("body = %v, want %v", body, want)
	}

	// A literal stopId in updates overrides the stop_id argument.
	body = buildBody(t, "vsps_update_stop", map[string]any{
		"stop_id": "S1",
		"updates": map[string]any{"stopId": "S2", "status": "paused"},
	})
	want = map[string]any{"stopId": "S2", "status": "paused"}
	if !reflect.DeepEqual(body, want) {
		t.Fatalf("body = %v, want %v", body, want)
	}
}

func TestUpdateStopRejectsNonObjectUpdates(t *testing.T) {
	spec := catalogSpec(t, "vsps_update_stop")
	_, err := spec.Build(map[string]any{"stop_id": "S1", "updates": "paused"})
	if err == nil {
		t.Fatalf("expected error for non-object updates")
	}
}
