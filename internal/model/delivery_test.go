package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_Found(t *testing.T) {
	assert.True(t, Address{Line1: "Kerkstraat 1, 1000 Brussel"}.Found())
	assert.False(t, Address{Line1: AddressNotFound}.Found())
	assert.False(t, Address{}.Found())
}

func TestDeliveryRecord_HasSignal(t *testing.T) {
	assert.True(t, DeliveryRecord{CustomerRef: "ORD-100"}.HasSignal())
	assert.True(t, DeliveryRecord{DeliveryAddress: Address{Line1: "Kerkstraat 1"}}.HasSignal())
	assert.False(t, DeliveryRecord{DeliveryAddress: Address{Line1: AddressNotFound}}.HasSignal())
}

func TestNewExtractionResult_Invariants(t *testing.T) {
	two := []DeliveryRecord{{CustomerRef: "A-1"}, {CustomerRef: "A-2"}}
	result := NewExtractionResult("raw", two, true, MethodRemote)

	assert.True(t, result.Success)
	assert.Equal(t, 85, result.Confidence)
	assert.Equal(t, 2, result.DeliveryCount)
	assert.True(t, result.MultipleDeliveries)
	assert.True(t, result.AIPowered)

	one := NewExtractionResult("raw", two[:1], false, MethodHeuristic)
	assert.Equal(t, 1, one.DeliveryCount)
	assert.False(t, one.MultipleDeliveries)
	assert.Equal(t, 85, one.Confidence)

	none := NewExtractionResult("raw", nil, false, MethodHeuristic)
	assert.True(t, none.Success)
	assert.Equal(t, 60, none.Confidence)
	assert.Equal(t, 0, none.DeliveryCount)
}

func TestDeliveryRecord_JSONShape(t *testing.T) {
	rec := DeliveryRecord{
		TaskID:      "TASK-1",
		CustomerRef: "ORD-100",
		DeliveryAddress: Address{
			Line1:        "Kerkstraat 1, 1000 Brussel",
			ContactName:  "Jan Peeters",
			ContactPhone: "+32 477 12 34 56",
		},
		ServiceDate:     "2025-10-11",
		TimeWindowStart: "10:00",
		TimeWindowEnd:   "12:00",
		Items:           []Item{{Description: "dozen", Quantity: 2, TempClass: TempAmbient}},
		Priority:        PriorityHigh,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"taskId", "customerRef", "deliveryAddress", "serviceDate", "timeWindowStart", "timeWindowEnd", "items", "priority"} {
		assert.Contains(t, m, key)
	}
	addr := m["deliveryAddress"].(map[string]any)
	assert.Equal(t, "Jan Peeters", addr["contactName"])
}
