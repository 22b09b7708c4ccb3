package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":     1,
		"amount": "2000.00",
	}

	before := time.Now()
	evt := NewEvent(EventTypeCreated, EntityTypePayment, payload)
	after := time.Now()

	assert.Equal(t, "payment.created", evt.Type)
	assert.Equal(t, EntityTypePayment, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
	assert.Equal(t, time.UTC, evt.Timestamp.Location())
}

func TestEvent_JSON_Serialization(t *testing.T) {
	fixedTime := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	evt := Event{
		Type:      "adjustment.reversed",
		Entity:    EntityTypeAdjustment,
		Payload:   map[string]interface{}{"id": float64(7)},
		Timestamp: fixedTime,
	}

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "adjustment.reversed", decoded["type"])
	assert.Equal(t, "adjustment", decoded["entity"])
	assert.Equal(t, "2024-02-10T09:00:00Z", decoded["timestamp"])
	assert.Equal(t, float64(7), decoded["payload"].(map[string]interface{})["id"])
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		evt      Event
		expected string
		entity   EntityType
	}{
		{"loan created", LoanCreated(nil), "loan.created", EntityTypeLoan},
		{"loan closed", LoanClosed(nil), "loan.closed", EntityTypeLoan},
		{"payment created", PaymentCreated(nil), "payment.created", EntityTypePayment},
		{"chit group closed", ChitGroupClosed(nil), "chit_group.closed", EntityTypeChitGroup},
		{"link deleted", ChitLinkDeleted(nil), "chit_link.deleted", EntityTypeChitLink},
		{"adjustment created", AdjustmentCreated(nil), "adjustment.created", EntityTypeAdjustment},
		{"adjustment reversed", AdjustmentReversed(nil), "adjustment.reversed", EntityTypeAdjustment},
		{"direct payment", DirectChitPaymentCreated(nil), "direct_chit_payment.created", EntityTypeDirectChitPayment},
		{"line paid", ScheduleLinePaid(nil), "chit_schedule.paid", EntityTypeScheduleLine},
		{"line adjusted", ScheduleLineAdjusted(nil), "chit_schedule.adjusted", EntityTypeScheduleLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.evt.Type)
			assert.Equal(t, tt.entity, tt.evt.Entity)
		})
	}
}

func TestParseEntityType(t *testing.T) {
	e, ok := ParseEntityType("adjustment")
	assert.True(t, ok)
	assert.Equal(t, EntityTypeAdjustment, e)

	_, ok = ParseEntityType("transaction")
	assert.False(t, ok)
}
