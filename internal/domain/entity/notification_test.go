package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderTimeFor_ExactDaySpans(t *testing.T) {
	createdUTC := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, createdUTC.Add(72*time.Hour), ReminderTimeFor(createdUTC, 3))

	// The derivation is a fixed 24h-per-day offset, so it must not shift with
	// the zone of the creation timestamp.
	loc := time.FixedZone("UTC+3", 3*60*60)
	createdLocal := createdUTC.In(loc)
	assert.True(t, ReminderTimeFor(createdLocal, 3).Equal(ReminderTimeFor(createdUTC, 3)))
}

func TestReminderDue_Lifecycle(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	n := &ShipmentNotification{
		ID:           uuid.New(),
		CustomerName: "Ali Hassan",
		ReminderDays: 3,
		ReminderTime: ReminderTimeFor(t0, 3),
		CreatedAt:    t0,
	}

	assert.False(t, n.ReminderDue(t0), "not due at creation")
	assert.False(t, n.ReminderDue(n.ReminderTime.Add(-time.Second)), "not due one second early")
	assert.True(t, n.ReminderDue(n.ReminderTime), "due exactly at reminder time")
	assert.True(t, n.ReminderDue(t0.Add(30*24*time.Hour)), "stays due no matter how overdue")

	n.ReminderSent = true
	assert.False(t, n.ReminderDue(t0.Add(30*24*time.Hour)), "never due again once sent")
}

func TestShortID(t *testing.T) {
	n := &ShipmentNotification{ID: uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")}
	assert.Equal(t, "a1b2c3d4", n.ShortID())
}

func TestDefaultTemplates_CoverFixedSet(t *testing.T) {
	for _, name := range TemplateNames() {
		text := DefaultTemplateText(name)
		require.NotEmpty(t, text, name)
		assert.Contains(t, text, PlaceholderNotificationID, name)
	}
	assert.True(t, IsTemplateName(TemplateSMS))
	assert.False(t, IsTemplateName("unknown_template"))
	assert.Empty(t, DefaultTemplateText("unknown_template"))
}

func TestTemplateRender(t *testing.T) {
	n := &ShipmentNotification{
		ID:           uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000"),
		CustomerName: "Ali Hassan",
		PhoneNumber:  "+963911234567",
	}
	tpl := MessageTemplate{
		Name: TemplateSMS,
		Text: "Hi {customer_name}, shipment {notification_id} for {phone_number}. {unknown_token}",
	}

	got := tpl.Render(n)
	assert.Equal(t, "Hi Ali Hassan, shipment a1b2c3d4 for +963911234567. {unknown_token}", got)
}
