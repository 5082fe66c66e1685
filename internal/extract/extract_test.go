package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingInfoFrom_LabeledFields(t *testing.T) {
	analysis := "اسم العميل: أحمد محمد\n" +
		"رقم الهاتف: 0911 234 567\n" +
		"تاريخ الشحن: 2026-08-15\n" +
		"الوجهة: دمشق\n" +
		"قيمة الشحنة: 250 دولار\n"

	info := ShippingInfoFrom(analysis)

	assert.Equal(t, "أحمد محمد", info.CustomerName)
	assert.Equal(t, "+963911234567", info.PhoneNumber)
	assert.Equal(t, "2026-08-15", info.ShippingDate)
	assert.Equal(t, "دمشق", info.Destination)
	assert.Equal(t, "250 دولار", info.Value)
	assert.True(t, info.Complete())
}

func TestShippingInfoFrom_BarePhoneFallback(t *testing.T) {
	info := ShippingInfoFrom("the label shows +905311234567 and little else")

	assert.Equal(t, "+905311234567", info.PhoneNumber)
	assert.Empty(t, info.CustomerName)
	assert.False(t, info.Complete())
}

func TestShippingInfoFrom_RejectsImplausibleName(t *testing.T) {
	// Two runes is below the plausibility floor.
	info := ShippingInfoFrom("اسم العميل: أب\n")

	assert.Empty(t, info.CustomerName)
}

func TestShippingInfoFrom_TurkishNumberGetsCountryCode(t *testing.T) {
	info := ShippingInfoFrom("رقم الهاتف: 0531 123 45 67")

	assert.Equal(t, "+905311234567", info.PhoneNumber)
}

func TestPhoneNumbers_DeduplicatesAcrossPatterns(t *testing.T) {
	text := "اتصل على +963911234567 أو 0911234567"

	numbers := PhoneNumbers(text)

	assert.Contains(t, numbers, "+963911234567")
	// The same Syrian number with and without country code stays distinct
	// only when the normalized forms differ.
	for i, a := range numbers {
		for j, b := range numbers {
			if i != j {
				assert.NotEqual(t, a, b)
			}
		}
	}
}

func TestPhoneNumbers_EmptyText(t *testing.T) {
	assert.Empty(t, PhoneNumbers("لا يوجد أرقام هنا"))
}
