package telegram

import (
	"fmt"
	"strings"

	"shipnotify/internal/domain/entity"
	"shipnotify/internal/domain/phone"
)

// User-facing copy. The operators of this bot work in Arabic, so every
// message the bot sends is Arabic; the code around it stays English.
const (
	msgAdminOnly = "عذراً، هذا الأمر متاح للمسؤولين فقط."

	msgAdminPanel = "لوحة تحكم المسؤول. الرجاء اختيار أحد الخيارات أدناه:"

	msgAdminHelp = "دليل مساعدة المسؤول:\n\n" +
		"- استخدم 'قائمة الإشعارات' لعرض جميع الإشعارات المسجلة.\n" +
		"- استخدم 'إضافة إشعار' لإضافة إشعار جديد.\n" +
		"- استخدم 'بحث بالاسم' للبحث عن الإشعارات حسب اسم العميل.\n" +
		"- استخدم 'بحث برقم الهاتف' للبحث عن الإشعارات حسب رقم هاتف العميل.\n" +
		"- استخدم 'إدارة المسؤولين' لإضافة أو إزالة مسؤولين.\n" +
		"- استخدم 'قوالب الرسائل' لتعديل قوالب الرسائل المستخدمة في النظام.\n\n" +
		"يمكنك دائمًا استخدام /admin للعودة إلى لوحة تحكم المسؤول."

	msgUserHelp = "مرحباً بك في بوت إشعارات الشحن!\n\n" +
		"الأوامر المتاحة:\n" +
		"/start - بدء استخدام البوت\n" +
		"/search - البحث عن إشعاراتك باستخدام رقم هاتفك\n" +
		"/help - عرض هذه الرسالة\n\n" +
		"يمكنك أيضاً استخدام /search متبوعاً برقم هاتفك مباشرة، مثل:\n" +
		"/search 0912345678"

	msgAskCustomerName       = "الرجاء إدخال اسم العميل:"
	msgAskCustomerNameInline = "لإضافة إشعار جديد، الرجاء إدخال اسم العميل:"
	msgAskPhoneNumber    = "الرجاء إدخال رقم هاتف العميل:"
	msgAskImage          = "الرجاء إرسال صورة الإشعار:"
	msgAskReminderDays   = "الرجاء إدخال عدد أيام التذكير (سيتم إرسال رسالة تذكير بعد هذا العدد من الأيام):"
	msgDaysTooSmall      = "عذراً، يجب أن يكون عدد الأيام أكبر من أو يساوي 1. الرجاء المحاولة مرة أخرى:"
	msgDaysNotNumeric    = "عذراً، يجب إدخال رقم صحيح. الرجاء المحاولة مرة أخرى:"
	msgOperationCanceled = "تم إلغاء العملية الحالية."

	msgAskNewAdminID    = "الرجاء إدخال معرّف المسؤول الجديد:"
	msgAskRemoveAdminID = "الرجاء إدخال معرّف المسؤول المراد إزالته:"
	msgInvalidAdminID   = "عذراً، يجب إدخال معرّف صالح (رقم صحيح). الرجاء المحاولة مرة أخرى:"
	msgCannotRemoveSelf = "لا يمكنك إزالة نفسك من قائمة المسؤولين."
	msgAdminsReset      = "تم إعادة تعيين قائمة المسؤولين. أنت الآن المسؤول الرئيسي الوحيد."

	msgAskSearchName      = "الرجاء إدخال اسم العميل للبحث عنه:"
	msgAskSearchPhone     = "الرجاء إدخال رقم هاتف العميل للبحث عنه:"
	msgAskUserSearchPhone = "الرجاء إدخال رقم هاتفك للبحث عن إشعاراتك:"

	msgNoNotifications = "لا توجد إشعارات حالياً."

	msgAIUnavailable = "عذراً، ميزات الذكاء الاصطناعي غير متاحة حالياً. الرجاء التحقق من تكوين مفاتيح API."
	msgAIPanel       = "مرحباً بك في واجهة الذكاء الاصطناعي! الرجاء اختيار أحد الخيارات أدناه:"
	msgAIChatIntro   = "أرسل لي رسالة وسأرد عليك باستخدام الذكاء الاصطناعي.\n" +
		"يمكنك استخدام هذه الميزة للاستفسار عن الشحنات أو طلب معلومات.\n\n" +
		"أرسل /cancel للإلغاء."
	msgAIImageIntro = "الرجاء إرسال صورة الشحنة لتحليلها باستخدام الذكاء الاصطناعي.\n" +
		"سأحاول استخراج المعلومات المهمة مثل اسم العميل ورقم الهاتف وتفاصيل الشحنة.\n\n" +
		"أرسل /cancel للإلغاء."
	msgAICanceled    = "تم إلغاء عملية الذكاء الاصطناعي."
	msgAIChatFailed  = "عذراً، حدث خطأ أثناء توليد الرد. الرجاء المحاولة مرة أخرى لاحقاً."
	msgAINoExtract   = "عذراً، لم أتمكن من استخراج معلومات مفيدة من هذه الصورة.\nالرجاء التأكد من أن الصورة تحتوي على معلومات شحنة واضحة وإرسالها مرة أخرى."
	msgExtractFailed = "حدث خطأ أثناء إنشاء الإشعار. الرجاء التحقق من البيانات المستخرجة."

	msgConfirmUsage = "الرجاء توفير معرّف الإشعار بعد الأمر، مثل: /confirm abc123"
	msgRemindUsage  = "الرجاء توفير معرّف الإشعار بعد الأمر، مثل: /remind abc123"
	msgVerifyUsage  = "الرجاء توفير معرّف الإشعار بعد الأمر، مثل: /verify abc123"

	msgTemplateVars = "متغيرات القوالب المتاحة:\n" +
		"{customer_name}: اسم العميل\n" +
		"{notification_id}: معرّف الإشعار\n" +
		"{phone_number}: رقم هاتف العميل"
)

// templateTitles maps template names to their Arabic display titles.
var templateTitles = map[string]string{
	entity.TemplateSMS:          "قالب الرسالة النصية",
	entity.TemplateWelcome:      "قالب رسالة الترحيب",
	entity.TemplateVerification: "قالب رسالة التحقق",
}

func msgAdminPanelWithTotal(total int64) string {
	return fmt.Sprintf("%s\n\n📦 عدد الإشعارات المسجلة: %d", msgAdminPanel, total)
}

func msgPromotedToAdmin(firstName string) string {
	return fmt.Sprintf("مرحباً %s! تم تعيينك كمسؤول رئيسي للنظام.\nيمكنك استخدام /admin للوصول إلى لوحة تحكم المسؤول.", firstName)
}

func msgAdminWelcome(firstName string) string {
	return fmt.Sprintf("مرحباً %s! أنت مسؤول في نظام إشعارات الشحن.\nالرجاء اختيار أحد الخيارات أدناه:", firstName)
}

func msgUserWelcome(firstName string) string {
	return fmt.Sprintf("مرحباً %s! هذا بوت إشعارات الشحن.\nيمكنك البحث عن إشعاراتك باستخدام أمر /search متبوعًا برقم هاتفك.", firstName)
}

func msgNotificationAdded(n *entity.ShipmentNotification, days int) string {
	return fmt.Sprintf("تم إضافة الإشعار بنجاح!\n\nالاسم: %s\nالهاتف: %s\nرمز الإشعار: %s\nالتذكير بعد: %d يوم",
		n.CustomerName, n.PhoneNumber, n.ShortID(), days)
}

func msgExtractCreated(n *entity.ShipmentNotification, days int) string {
	return fmt.Sprintf("تم إنشاء إشعار جديد بنجاح!\n\nالاسم: %s\nالهاتف: %s\nرمز الإشعار: %s\nالتذكير بعد: %d يوم",
		n.CustomerName, n.PhoneNumber, n.ShortID(), days)
}

func msgNotificationImageCaption(n *entity.ShipmentNotification) string {
	return fmt.Sprintf("صورة الإشعار لـ %s", n.CustomerName)
}

func msgSearchImageCaption(n *entity.ShipmentNotification) string {
	return fmt.Sprintf("صورة الإشعار لـ %s (%s)", n.CustomerName, n.ShortID())
}

func msgUserImageCaption(n *entity.ShipmentNotification) string {
	return fmt.Sprintf("صورة الإشعار رقم %s", n.ShortID())
}

func msgImageSendFailed(n *entity.ShipmentNotification) string {
	return fmt.Sprintf("حدث خطأ أثناء إرسال صورة الإشعار %s", n.ShortID())
}

func msgNotificationNotFound(idText string) string {
	return fmt.Sprintf("لم يتم العثور على إشعار بالمعرّف '%s'.", idText)
}

func msgDeliveryConfirmed(n *entity.ShipmentNotification) string {
	return fmt.Sprintf("تم تأكيد تسليم الإشعار لـ %s بنجاح.", n.CustomerName)
}

func msgReminderSentOK(n *entity.ShipmentNotification) string {
	return fmt.Sprintf("تم إرسال تذكير للعميل %s بنجاح.", n.CustomerName)
}

func msgReminderSendFailed() string {
	return "حدث خطأ أثناء إرسال التذكير. الرجاء التأكد من تكوين الرسائل النصية بشكل صحيح."
}

func msgVerificationSentOK(n *entity.ShipmentNotification) string {
	return fmt.Sprintf("تم إرسال رسالة تحقق للعميل %s بنجاح.", n.CustomerName)
}

func msgVerificationSendFailed() string {
	return "حدث خطأ أثناء إرسال رسالة التحقق. الرجاء التأكد من تكوين الرسائل النصية بشكل صحيح."
}

func msgAdminAdded(adminID int64) string {
	return fmt.Sprintf("تم إضافة المسؤول %d بنجاح.", adminID)
}

func msgAdminAddFailed() string {
	return "حدث خطأ أثناء إضافة المسؤول. الرجاء المحاولة مرة أخرى."
}

func msgAdminRemoved(adminID int64) string {
	return fmt.Sprintf("تم إزالة المسؤول %d بنجاح.", adminID)
}

func msgAdminRemoveFailed() string {
	return "حدث خطأ أثناء إزالة المسؤول. الرجاء التأكد من أن المعرّف صحيح والمحاولة مرة أخرى."
}

func msgTemplateUpdated(name string) string {
	return fmt.Sprintf("تم تحديث %s بنجاح.", templateTitles[name])
}

func msgTemplateUpdateFailed(name string) string {
	return fmt.Sprintf("حدث خطأ أثناء تحديث %s. الرجاء المحاولة مرة أخرى.", templateTitles[name])
}

func msgAskTemplateText(name, current string) string {
	return fmt.Sprintf("الرجاء إدخال نص %s الجديد:\n\nالقالب الحالي:\n%s\n\n%s",
		templateTitles[name], current, msgTemplateVars)
}

func msgAdminList(admins []*entity.Administrator) string {
	var sb strings.Builder
	sb.WriteString("إدارة المسؤولين:\n\n")

	if len(admins) == 0 {
		sb.WriteString("لا يوجد مسؤولون حالياً.\n")

		return sb.String()
	}

	sb.WriteString("المسؤولون الحاليون:\n")
	for i, admin := range admins {
		fmt.Fprintf(&sb, "%d. %d\n", i+1, admin.TelegramID)
	}

	return sb.String()
}

func msgTemplateOverview(templates map[string]*entity.MessageTemplate) string {
	var sb strings.Builder
	sb.WriteString("إدارة قوالب الرسائل:\n\n")
	sb.WriteString(msgTemplateVars)
	sb.WriteString("\n\nالقوالب الحالية:\n\n")

	for i, name := range entity.TemplateNames() {
		text := "غير محدد"
		if tpl, ok := templates[name]; ok {
			text = tpl.Text
		}
		fmt.Fprintf(&sb, "%d. %s:\n%s\n\n", i+1, templateTitles[name], text)
	}

	return sb.String()
}

// notificationSummary renders one list or search entry the way the admin
// panel shows it.
func notificationSummary(index int, n *entity.ShipmentNotification) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d. %s - %s\n", index, n.CustomerName, n.PhoneNumber)
	fmt.Fprintf(&sb, "   رمز: %s\n", n.ShortID())
	fmt.Fprintf(&sb, "   تاريخ الإنشاء: %s\n", n.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "   التذكير: %s", n.ReminderTime.Format("2006-01-02 15:04"))
	if n.ReminderSent {
		sb.WriteString(" (تم الإرسال)")
	} else {
		sb.WriteString(" (لم يتم الإرسال بعد)")
	}
	sb.WriteString("\n\n")

	return sb.String()
}

func msgNotificationPage(items []*entity.ShipmentNotification, page, totalPages int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "قائمة الإشعارات (الصفحة %d من %d):\n\n", page, totalPages)
	for i, n := range items {
		sb.WriteString(notificationSummary(i+1, n))
	}

	return sb.String()
}

func msgSearchByNameResults(query string, results []*entity.ShipmentNotification) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "تم العثور على %d إشعارات تطابق الاسم '%s':\n\n", len(results), query)
	for i, n := range results {
		sb.WriteString(notificationSummary(i+1, n))
	}

	return sb.String()
}

func msgSearchByNameEmpty(query string) string {
	return fmt.Sprintf("لم يتم العثور على إشعارات تطابق الاسم '%s'.", query)
}

func msgSearchByPhoneResults(query string, results []*entity.ShipmentNotification) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "تم العثور على %d إشعارات تطابق رقم الهاتف '%s':\n\n", len(results), query)
	for i, n := range results {
		sb.WriteString(notificationSummary(i+1, n))
	}

	return sb.String()
}

func msgSearchByPhoneEmpty(query string) string {
	return fmt.Sprintf("لم يتم العثور على إشعارات تطابق رقم الهاتف '%s'.", query)
}

// msgUserSearchResults hides the full phone number from public searches.
func msgUserSearchResults(query string, results []*entity.ShipmentNotification) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "تم العثور على %d إشعارات مطابقة لرقم الهاتف '%s':\n\n", len(results), query)
	for i, n := range results {
		fmt.Fprintf(&sb, "%d. اسم العميل: %s\n", i+1, n.CustomerName)
		fmt.Fprintf(&sb, "   رقم الهاتف: %s\n", phone.Mask(n.PhoneNumber))
		fmt.Fprintf(&sb, "   رمز الإشعار: %s\n\n", n.ShortID())
	}

	return sb.String()
}

func msgUserSearchEmpty(query string) string {
	return fmt.Sprintf("لم يتم العثور على إشعارات مطابقة لرقم الهاتف '%s'.", query)
}

func msgChatPhoneMatches(results []*entity.ShipmentNotification) string {
	var sb strings.Builder
	sb.WriteString("أرى أنك تبحث عن معلومات مرتبطة برقم هاتف. ")
	sb.WriteString("وجدت بعض الإشعارات المطابقة لرقم الهاتف المذكور:\n\n")
	for i, n := range results {
		fmt.Fprintf(&sb, "%d. اسم العميل: %s\n", i+1, n.CustomerName)
		fmt.Fprintf(&sb, "   رقم الهاتف: %s\n", n.PhoneNumber)
		fmt.Fprintf(&sb, "   رمز الإشعار: %s\n\n", n.ShortID())
	}

	return sb.String()
}

func msgImageAnalysis(info ImageAnalysis) string {
	var sb strings.Builder
	sb.WriteString("تحليل الصورة:\n\n")

	if info.CustomerName != "" {
		fmt.Fprintf(&sb, "🧑 اسم العميل: %s\n", info.CustomerName)
	}
	if info.PhoneNumber != "" {
		fmt.Fprintf(&sb, "📱 رقم الهاتف: %s\n", info.PhoneNumber)
	}
	if info.ShippingDate != "" {
		fmt.Fprintf(&sb, "📅 تاريخ الشحن: %s\n", info.ShippingDate)
	}
	if info.Destination != "" {
		fmt.Fprintf(&sb, "📍 الوجهة: %s\n", info.Destination)
	}
	if info.Value != "" {
		fmt.Fprintf(&sb, "💰 قيمة الشحنة: %s\n", info.Value)
	}

	fmt.Fprintf(&sb, "\nالتحليل الكامل:\n%s", info.FullAnalysis)

	return sb.String()
}

// ImageAnalysis carries the extracted fields plus the raw model output for
// display before the operator confirms creation.
type ImageAnalysis struct {
	CustomerName string
	PhoneNumber  string
	ShippingDate string
	Destination  string
	Value        string
	FullAnalysis string
}
