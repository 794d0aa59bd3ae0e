package tools

import (
	"fmt"
	"net/http"
	"time"
)

// Stop-instruction levels and distance units the partner documents. Values
// are forwarded to the partner as given; the constants keep builders and
// callers agreeing on spelling.
const (
	LevelMerchant = "merchant"
	LevelMCC      = "mcc"
	LevelPAN      = "pan"

	DistanceUnitKM = "km"
	DistanceUnitMI = "mi"
)

const (
	atmApplicationID = "VISABRIDGE"

	defaultATMDistance      = 5
	defaultSearchPeriodDays = 90
	defaultMerchantReason   = "Subscription cancellation"
)

// Catalog returns the full tool catalog in its fixed order. now supplies the
// timestamp embedded in the ATM locator request header; pass nil for the
// real clock.
func Catalog(now func() time.Time) []Spec {
	if now == nil {
		now = time.Now
	}
	return []Spec{
		{
			Name:        "hello_world",
			Description: "Test connectivity to the Visa API. Returns a hello world response to verify authentication is working.",
			Method:      http.MethodGet,
			Path:        "/vdp/helloworld",
		},
		{
			Name:        "get_exchange_rate",
			Description: "Get the foreign exchange rate between two currencies. Provide source and destination currency codes (e.g. USD, EUR, GBP) and the amount to convert.",
			Method:      http.MethodPost,
			Path:        "/forexrates/v2/foreignexchangerates",
			Params: []Param{
				{Name: "source_currency", Type: TypeString, Description: "Source currency code.", Required: true},
				{Name: "destination_currency", Type: TypeString, Description: "Destination currency code.", Required: true},
				{Name: "amount", Type: TypeNumber, Description: "Amount to convert, in the source currency.", Required: true},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				return map[string]any{
					"sourceCurrencyCode":      stringArg(args, "source_currency"),
					"destinationCurrencyCode": stringArg(args, "destination_currency"),
					"sourceAmount":            amountString(args["amount"]),
				}, nil
			},
		},
		{
			Name:        "find_nearby_atms",
			Description: "Find nearby Visa ATMs. Provide latitude, longitude, and optional distance (default 5) and unit (km or mi).",
			Method:      http.MethodPost,
			Path:        "/globalatmlocator/v1/localatms/atmLocator",
			Params: []Param{
				{Name: "latitude", Type: TypeNumber, Description: "Latitude of the search center.", Required: true},
				{Name: "longitude", Type: TypeNumber, Description: "Longitude of the search center.", Required: true},
				{Name: "distance", Type: TypeInteger, Description: "Search radius.", Default: defaultATMDistance},
				{Name: "distance_unit", Type: TypeString, Description: "Radius unit: km or mi.", Default: DistanceUnitKM},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				lat, _ := asFloat64(args["latitude"])
				lon, _ := asFloat64(args["longitude"])
				distance, _ := asInt(args["distance"])
				return map[string]any{
					"wsRequestHeaderV2": map[string]any{
						"requestTs":     now().UTC().Format(time.RFC3339),
						"applicationId": atmApplicationID,
					},
					"requestData": map[string]any{
						"location": map[string]any{
							"geocodes": map[string]any{
								"latitude":  lat,
								"longitude": lon,
							},
						},
						"options": map[string]any{
							"range": map[string]any{
								"distance":     distance,
								"distanceUnit": stringArg(args, "distance_unit"),
							},
							"findFilters": []any{},
							"sort": map[string]any{
								"primary":   "distance",
								"direction": "asc",
							},
						},
					},
				}, nil
			},
		},
		{
			Name:        "vsm_search",
			Description: "Search for active subscription stop instructions for a card. Provide the card PAN (Primary Account Number).",
			Method:      http.MethodPost,
			Path:        "/vsm/v1/search",
			Params: []Param{
				{Name: "pan", Type: TypeString, Description: "Card PAN.", Required: true},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				return map[string]any{"pan": stringArg(args, "pan")}, nil
			},
		},
		{
			Name:        "vsm_merchant_details",
			Description: "Get merchant details for a subscription transaction. Provide the transaction ID.",
			Method:      http.MethodPost,
			Path:        "/vsm/v1/merchantdetails",
			Params: []Param{
				{Name: "transaction_id", Type: TypeString, Description: "Transaction ID.", Required: true},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				return map[string]any{"transactionId": stringArg(args, "transaction_id")}, nil
			},
		},
		{
			Name:        "vsm_add_merchant",
			Description: "Add a merchant to stop subscription payments. Provide card PAN, merchant ID, and optional reason.",
			Method:      http.MethodPost,
			Path:        "/vsm/v1/addmerchant",
			Params: []Param{
				{Name: "pan", Type: TypeString, Description: "Card PAN.", Required: true},
				{Name: "merchant_id", Type: TypeString, Description: "Merchant ID to stop.", Required: true},
				{Name: "reason", Type: TypeString, Description: "Reason recorded with the stop.", Default: defaultMerchantReason},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				return map[string]any{
					"pan":        stringArg(args, "pan"),
					"merchantId": stringArg(args, "merchant_id"),
					"reason":     stringArg(args, "reason"),
				}, nil
			},
		},
		{
			Name:        "vsm_cancel",
			Description: "Cancel an existing subscription stop instruction. Provide the stop instruction ID.",
			Method:      http.MethodPost,
			Path:        "/vsm/v1/cancel",
			Params: []Param{
				{Name: "stop_id", Type: TypeString, Description: "Stop instruction ID.", Required: true},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				return map[string]any{"stopId": stringArg(args, "stop_id")}, nil
			},
		},
		{
			Name:        "vsps_search_instructions",
			Description: "Search for active stop payment instructions for a card. Provide the card PAN.",
			Method:      http.MethodPost,
			Path:        "/vsps/v1/stopinstructions/search",
			Params: []Param{
				{Name: "pan", Type: TypeString, Description: "Card PAN.", Required: true},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				return map[string]any{"pan": stringArg(args, "pan")}, nil
			},
		},
		{
			Name:        "vsps_search_eligible",
			Description: "Search for transactions eligible for stop payment. Provide card PAN and optional days to look back (30-180, default 90).",
			Method:      http.MethodPost,
			Path:        "/vsps/v1/eligibletransactions/search",
			Params: []Param{
				{Name: "pan", Type: TypeString, Description: "Card PAN.", Required: true},
				{Name: "days", Type: TypeInteger, Description: "Lookback window in days.", Default: defaultSearchPeriodDays},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				// The 30-180 bound is the partner's to enforce; the value is
				// forwarded as given.
				days, _ := asInt(args["days"])
				return map[string]any{
					"pan":              stringArg(args, "pan"),
					"searchPeriodDays": days,
				}, nil
			},
		},
		{
			Name:        "vsps_add_stop",
			Description: "Add a stop payment instruction. Provide card PAN, level (merchant/mcc/pan), and merchant_id or mcc based on level.",
			Method:      http.MethodPost,
			Path:        "/vsps/v1/stopinstructions/add",
			Params: []Param{
				{Name: "pan", Type: TypeString, Description: "Card PAN.", Required: true},
				{Name: "level", Type: TypeString, Description: "Stop level: merchant, mcc, or pan.", Required: true},
				{Name: "merchant_id", Type: TypeString, Description: "Merchant ID, used when level is merchant."},
				{Name: "mcc", Type: TypeString, Description: "Merchant category code, used when level is mcc."},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				level := stringArg(args, "level")
				body := map[string]any{
					"pan":   stringArg(args, "pan"),
					"level": level,
				}
				// The identifier is attached only when it matches the level;
				// any other combination sends pan and level alone.
				if merchantID := stringArg(args, "merchant_id"); level == LevelMerchant && merchantID != "" {
					body["merchantId"] = merchantID
				} else if mcc := stringArg(args, "mcc"); level == LevelMCC && mcc != "" {
					body["mcc"] = mcc
				}
				return body, nil
			},
		},
		{
			Name:        "vsps_cancel_stop",
			Description: "Cancel an existing stop payment instruction. Provide the stop instruction ID.",
			Method:      http.MethodPost,
			Path:        "/vsps/v1/stopinstructions/cancel",
			Params: []Param{
				{Name: "stop_id", Type: TypeString, Description: "Stop instruction ID.", Required: true},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				return map[string]any{"stopId": stringArg(args, "stop_id")}, nil
			},
		},
		{
			Name:        "vsps_update_stop",
			Description: "Update an existing stop payment instruction. Provide stop ID and updates as key-value pairs.",
			Method:      http.MethodPost,
			Path:        "/vsps/v1/stopinstructions/update",
			Params: []Param{
				{Name: "stop_id", Type: TypeString, Description: "Stop instruction ID.", Required: true},
				{Name: "updates", Type: TypeObject, Description: "Fields to change, merged into the request body.", Required: true},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				updates, ok := asMap(args["updates"])
				if !ok {
					return nil, fmt.Errorf("param 'updates' must be an object")
				}
				body := map[string]any{"stopId": stringArg(args, "stop_id")}
				// Caller-supplied keys win, including a literal "stopId".
				for k, v := range updates {
					body[k] = v
				}
				return body, nil
			},
		},
		{
			Name:        "vsps_extend_stop",
			Description: "Extend the end date of a stop payment instruction. Provide stop ID and new end date (YYYY-MM-DD).",
			Method:      http.MethodPost,
			Path:        "/vsps/v1/stopinstructions/extend",
			Params: []Param{
				{Name: "stop_id", Type: TypeString, Description: "Stop instruction ID.", Required: true},
				{Name: "new_end_date", Type: TypeString, Description: "New end date, ISO format (YYYY-MM-DD).", Required: true},
			},
			Build: func(args map[string]any) (map[string]any, error) {
				return map[string]any{
					"stopId":     stringArg(args, "stop_id"),
					"newEndDate": stringArg(args, "new_end_date"),
				}, nil
			},
		},
	}
}
