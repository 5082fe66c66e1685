package postgres

import (
	"testing"
	"time"

	"shipnotify/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildPatchUpdates_SkipsNilFields(t *testing.T) {
	updates := buildPatchUpdates(entity.NotificationPatch{})
	assert.Empty(t, updates)

	name := "ليلى حسن"
	updates = buildPatchUpdates(entity.NotificationPatch{CustomerName: &name})
	assert.Equal(t, map[string]interface{}{"customer_name": name}, updates)
}

func TestBuildPatchUpdates_SyncsPhoneDigitsProjection(t *testing.T) {
	number := "+963 91 123 4567"
	updates := buildPatchUpdates(entity.NotificationPatch{PhoneNumber: &number})

	assert.Equal(t, number, updates["phone_number"])
	assert.Equal(t, "963911234567", updates["phone_digits"])
}

func TestBuildPatchUpdates_FullPatch(t *testing.T) {
	name := "أحمد محمد"
	number := "+963911234567"
	image := "images/a1.jpg"
	sent := true
	confirmed := true
	confirmedAt := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)
	proof := "images/proof.jpg"

	updates := buildPatchUpdates(entity.NotificationPatch{
		CustomerName:       &name,
		PhoneNumber:        &number,
		ImagePath:          &image,
		ReminderSent:       &sent,
		DeliveryConfirmed:  &confirmed,
		DeliveryDate:       &confirmedAt,
		DeliveryProofImage: &proof,
	})

	assert.Equal(t, map[string]interface{}{
		"customer_name":        name,
		"phone_number":         number,
		"phone_digits":         "963911234567",
		"image_path":           image,
		"reminder_sent":        sent,
		"delivery_confirmed":   confirmed,
		"delivery_date":        confirmedAt,
		"delivery_proof_image": proof,
	}, updates)
}
