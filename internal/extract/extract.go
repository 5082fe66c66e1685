// Package extract pulls structured shipment fields out of free-form
// analysis text. The vision model answers in prose (Arabic labels,
// sometimes bare numbers), so each field is matched against a ladder of
// patterns from most to least specific.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"shipnotify/internal/domain/phone"
)

// Name sanity bounds, in runes.
const (
	minNameLen = 3
	maxNameLen = 50
)

// ShippingInfo holds the fields recognized in an analysis text. Empty
// strings mark fields that were not found.
type ShippingInfo struct {
	CustomerName string
	PhoneNumber  string
	ShippingDate string
	Destination  string
	Value        string
}

// Complete reports whether the info carries enough data to create a
// notification without operator input.
func (i ShippingInfo) Complete() bool {
	return i.CustomerName != "" && i.PhoneNumber != ""
}

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`اسم العميل:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`اسم المستلم:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`العميل:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`المستلم:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`اسم:?\s*([^\n:;,،]+)`),
}

var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`رقم الهاتف:?\s*([+\d\s\-()]+)`),
	regexp.MustCompile(`الهاتف:?\s*([+\d\s\-()]+)`),
	regexp.MustCompile(`رقم الجوال:?\s*([+\d\s\-()]+)`),
	regexp.MustCompile(`الجوال:?\s*([+\d\s\-()]+)`),
	regexp.MustCompile(`رقم:?\s*([+\d\s\-()]+)`),
	regexp.MustCompile(`(\+?90\d{10})`),
	regexp.MustCompile(`(\+?963\d{9})`),
	regexp.MustCompile(`(\d{10,11})`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`تاريخ الشحن:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`تاريخ:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`),
	regexp.MustCompile(`(\d{2}-\d{2}-\d{4})`),
}

var destinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`وجهة الشحنة:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`الوجهة:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`المدينة:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`العنوان:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`مدينة:?\s*([^\n:;,،]+)`),
}

var valuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`قيمة الشحنة:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`قيمة:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`المبلغ:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`السعر:?\s*([^\n:;,،]+)`),
	regexp.MustCompile(`(\d+(?:,\d+)*(?:\.\d+)?\s*(?:ليرة|ل\.س|دولار|\$|TL|₺))`),
}

var loosePhonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?90\d{10}`), // Turkish with country code
	regexp.MustCompile(`\+?963\d{9}`), // Syrian with country code
	regexp.MustCompile(`0?9\d{8}`),    // Syrian without country code
	regexp.MustCompile(`0?5\d{9}`),    // Turkish without country code
	regexp.MustCompile(`\d{10,11}`),   // any generic number
}

// ShippingInfoFrom scans the analysis text for shipment fields.
func ShippingInfoFrom(analysisText string) ShippingInfo {
	var info ShippingInfo

	if name := firstMatch(namePatterns, analysisText); name != "" {
		if n := utf8.RuneCountInString(name); n >= minNameLen && n <= maxNameLen {
			info.CustomerName = name
		}
	}

	if raw := firstMatch(phonePatterns, analysisText); raw != "" {
		info.PhoneNumber = phone.Normalize(cleanPhone(raw))
	}

	info.ShippingDate = firstMatch(datePatterns, analysisText)
	info.Destination = firstMatch(destinationPatterns, analysisText)
	info.Value = firstMatch(valuePatterns, analysisText)

	return info
}

// PhoneNumbers finds every phone number mentioned in the text, normalized
// and deduplicated in first-seen order.
func PhoneNumbers(text string) []string {
	var numbers []string
	seen := map[string]struct{}{}

	for _, pattern := range loosePhonePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			number := phone.Normalize(cleanPhone(match))
			if _, dup := seen[number]; dup {
				continue
			}
			seen[number] = struct{}{}
			numbers = append(numbers, number)
		}
	}

	return numbers
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if groups := pattern.FindStringSubmatch(text); len(groups) > 1 {
			if value := strings.TrimSpace(groups[1]); value != "" {
				return value
			}
		}
	}

	return ""
}

// cleanPhone strips everything except digits and a leading plus.
func cleanPhone(raw string) string {
	var cleaned strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			cleaned.WriteRune(r)
		}
	}

	return cleaned.String()
}
