package entity

import (
	"strings"
	"time"
)

// Template names form a fixed set; the store never grows or shrinks it.
const (
	TemplateSMS          = "sms_template"
	TemplateWelcome      = "welcome_template"
	TemplateVerification = "verification_template"
)

// Placeholder tokens substituted into template text by literal replacement.
// Unknown tokens pass through unchanged.
const (
	PlaceholderCustomerName   = "{customer_name}"
	PlaceholderNotificationID = "{notification_id}"
	PlaceholderPhoneNumber    = "{phone_number}"
)

// MessageTemplate is a named outbound-message pattern with placeholder tokens.
type MessageTemplate struct {
	Name      string    `json:"name"`       // One of the Template* constants.
	Text      string    `json:"text"`       // Pattern text with zero or more placeholder tokens.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// TemplateNames lists the fixed template set in display order.
func TemplateNames() []string {
	return []string{TemplateSMS, TemplateWelcome, TemplateVerification}
}

// IsTemplateName reports whether name belongs to the fixed template set.
func IsTemplateName(name string) bool {
	switch name {
	case TemplateSMS, TemplateWelcome, TemplateVerification:
		return true
	}

	return false
}

// DefaultTemplateText returns the built-in text for a template name, or an
// empty string for names outside the fixed set. The store synthesizes these
// defaults whenever the backing rows are absent.
func DefaultTemplateText(name string) string {
	switch name {
	case TemplateSMS:
		return "السلام عليكم {customer_name}،\nلديك شحنة جديدة رقم {notification_id} بانتظار التسليم.\nيرجى التواصل مع المسوق لاستلام طلبك.\nNatureCare"
	case TemplateWelcome:
		return "مرحباً {customer_name}،\nشكراً لطلبك من NatureCare! تم تسجيل شحنتك برقم {notification_id} وسيتم التسليم قريباً."
	case TemplateVerification:
		return "تأكيد استلام الشحنة رقم {notification_id}\nالاسم: {customer_name}\nالرجاء الرد بكلمة 'تم' لتأكيد الاستلام.\nNatureCare"
	}

	return ""
}

// Render substitutes the shipment's fields into the template text. The
// notification ID token renders as the short customer-facing code.
func (t MessageTemplate) Render(n *ShipmentNotification) string {
	out := strings.ReplaceAll(t.Text, PlaceholderCustomerName, n.CustomerName)
	out = strings.ReplaceAll(out, PlaceholderNotificationID, n.ShortID())
	out = strings.ReplaceAll(out, PlaceholderPhoneNumber, n.PhoneNumber)

	return out
}
