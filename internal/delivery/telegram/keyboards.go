package telegram

import "shipnotify/internal/domain/service"

// Callback data values carried by the inline keyboards.
const (
	cbListNotifications = "list_notifications"
	cbAddNotification   = "add_notification"
	cbSearchByName      = "search_by_name"
	cbSearchByPhone     = "search_by_phone"
	cbManageAdmins      = "manage_admins"
	cbManageTemplates   = "manage_templates"
	cbAdminHelp         = "admin_help"

	cbPrevPage    = "prev_page"
	cbNextPage    = "next_page"
	cbBackToAdmin = "back_to_admin"

	cbAddAdmin    = "add_admin"
	cbRemoveAdmin = "remove_admin"
	cbResetAdmins = "reset_admins"

	cbEditSMSTemplate          = "edit_sms_template"
	cbEditWelcomeTemplate      = "edit_welcome_template"
	cbEditVerificationTemplate = "edit_verification_template"

	cbAIChat         = "ai_chat"
	cbAIImage        = "ai_image"
	cbAICancel       = "ai_cancel"
	cbExtractConfirm = "extract_confirm_1"
)

func adminPanelKeyboard() service.InlineKeyboard {
	return service.InlineKeyboard{
		{
			{Text: "📋 قائمة الإشعارات", CallbackData: cbListNotifications},
			{Text: "➕ إضافة إشعار", CallbackData: cbAddNotification},
		},
		{
			{Text: "🔍 بحث بالاسم", CallbackData: cbSearchByName},
			{Text: "📱 بحث برقم الهاتف", CallbackData: cbSearchByPhone},
		},
		{
			{Text: "👥 إدارة المسؤولين", CallbackData: cbManageAdmins},
			{Text: "✉️ قوالب الرسائل", CallbackData: cbManageTemplates},
		},
		{
			{Text: "❓ مساعدة", CallbackData: cbAdminHelp},
		},
	}
}

func manageAdminsKeyboard() service.InlineKeyboard {
	return service.InlineKeyboard{
		{
			{Text: "➕ إضافة مسؤول", CallbackData: cbAddAdmin},
			{Text: "❌ إزالة مسؤول", CallbackData: cbRemoveAdmin},
		},
		{
			{Text: "🗑️ إعادة تعيين المسؤولين", CallbackData: cbResetAdmins},
		},
		{
			{Text: "🔙 العودة", CallbackData: cbBackToAdmin},
		},
	}
}

func manageTemplatesKeyboard() service.InlineKeyboard {
	return service.InlineKeyboard{
		{{Text: "📝 تعديل الرسالة النصية", CallbackData: cbEditSMSTemplate}},
		{{Text: "📝 تعديل رسالة الترحيب", CallbackData: cbEditWelcomeTemplate}},
		{{Text: "📝 تعديل رسالة التحقق", CallbackData: cbEditVerificationTemplate}},
		{{Text: "🔙 العودة", CallbackData: cbBackToAdmin}},
	}
}

func aiPanelKeyboard() service.InlineKeyboard {
	return service.InlineKeyboard{
		{
			{Text: "💬 محادثة ذكية", CallbackData: cbAIChat},
			{Text: "🖼️ تحليل صورة", CallbackData: cbAIImage},
		},
		{
			{Text: "❌ إلغاء", CallbackData: cbAICancel},
		},
	}
}

func extractConfirmKeyboard(canCreate bool) service.InlineKeyboard {
	var keyboard service.InlineKeyboard
	if canCreate {
		keyboard = append(keyboard, []service.InlineButton{
			{Text: "✅ إنشاء إشعار من هذه البيانات", CallbackData: cbExtractConfirm},
		})
	}
	keyboard = append(keyboard, []service.InlineButton{
		{Text: "❌ إلغاء", CallbackData: cbAICancel},
	})

	return keyboard
}

// pageNavKeyboard builds prev/next navigation plus the back button for the
// notification list.
func pageNavKeyboard(page, totalPages int) service.InlineKeyboard {
	var nav []service.InlineButton
	if page > 1 {
		nav = append(nav, service.InlineButton{Text: "⬅️ السابق", CallbackData: cbPrevPage})
	}
	if page < totalPages {
		nav = append(nav, service.InlineButton{Text: "التالي ➡️", CallbackData: cbNextPage})
	}

	var keyboard service.InlineKeyboard
	if len(nav) > 0 {
		keyboard = append(keyboard, nav)
	}
	keyboard = append(keyboard, []service.InlineButton{
		{Text: "🔙 العودة", CallbackData: cbBackToAdmin},
	})

	return keyboard
}

func backToAdminKeyboard() service.InlineKeyboard {
	return service.InlineKeyboard{
		{{Text: "🔙 العودة", CallbackData: cbBackToAdmin}},
	}
}

func backToManageAdminsKeyboard() service.InlineKeyboard {
	return service.InlineKeyboard{
		{{Text: "🔙 العودة", CallbackData: cbManageAdmins}},
	}
}

func backToManageTemplatesKeyboard() service.InlineKeyboard {
	return service.InlineKeyboard{
		{{Text: "🔙 العودة", CallbackData: cbManageTemplates}},
	}
}
