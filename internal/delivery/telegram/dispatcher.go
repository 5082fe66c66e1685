package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"shipnotify/config"
	"shipnotify/internal/domain/entity"
	"shipnotify/internal/domain/service"
	"shipnotify/internal/extract"
	"shipnotify/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// aiDefaultReminderDays is used when a notification is created straight
// from an analyzed image, where the operator never enters a day count.
const aiDefaultReminderDays = 3

// Params defines the required parameters
type Params struct {
	fx.In

	Config              *config.Config
	Logger              *slog.Logger
	NotificationUsecase usecase.NotificationUsecase
	AdminUsecase        usecase.AdminUsecase
	TemplateUsecase     usecase.TemplateUsecase
	ReminderUsecase     usecase.ReminderUsecase
	Messenger           service.Messenger
	Analyzer            service.VisionAnalyzer
	ImageStore          service.ImageStore
}

// Dispatcher routes incoming updates to commands, callback handlers and
// the per-chat conversation state machine.
type Dispatcher struct {
	cfg            *config.Config
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
	adminUC        usecase.AdminUsecase
	templateUC     usecase.TemplateUsecase
	reminderUC     usecase.ReminderUsecase
	messenger      service.Messenger
	analyzer       service.VisionAnalyzer
	images         service.ImageStore
	sessions       *SessionStore
}

// NewDispatcher creates a new update dispatcher.
func NewDispatcher(params Params) *Dispatcher {
	return &Dispatcher{
		cfg:            params.Config,
		logger:         params.Logger,
		notificationUC: params.NotificationUsecase,
		adminUC:        params.AdminUsecase,
		templateUC:     params.TemplateUsecase,
		reminderUC:     params.ReminderUsecase,
		messenger:      params.Messenger,
		analyzer:       params.Analyzer,
		images:         params.ImageStore,
		sessions:       NewSessionStore(),
	}
}

// HandleUpdate processes one webhook update. Errors are returned for
// logging; the webhook endpoint still acknowledges the update so Telegram
// does not redeliver it.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update *Update) error {
	switch {
	case update.CallbackQuery != nil:
		return d.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		return d.handleMessage(ctx, update.Message)
	default:
		return nil
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *Message) error {
	if msg.From == nil {
		return nil
	}

	chatID := msg.Chat.ID
	userID := msg.From.ID

	if strings.HasPrefix(msg.Text, "/") {
		return d.handleCommand(ctx, msg)
	}

	session := d.sessions.Get(chatID)

	switch session.State {
	case StateAwaitingName:
		session.CustomerName = msg.Text
		session.State = StateAwaitingPhone

		return d.send(ctx, chatID, msgAskPhoneNumber, nil)
	case StateAwaitingPhone:
		session.PhoneNumber = msg.Text
		session.State = StateAwaitingImage

		return d.send(ctx, chatID, msgAskImage, nil)
	case StateAwaitingImage:
		return d.receiveNotificationImage(ctx, chatID, msg, session)
	case StateAwaitingDays:
		return d.receiveReminderDays(ctx, chatID, msg.Text, session)
	case StateAwaitingAdminID:
		return d.receiveAdminID(ctx, chatID, userID, msg.Text, session)
	case StateAwaitingTemplateText:
		return d.receiveTemplateText(ctx, chatID, msg.Text, session)
	case StateAwaitingSearchName:
		session.Reset()

		return d.adminSearchByName(ctx, chatID, msg.Text)
	case StateAwaitingSearchPhone:
		session.Reset()

		return d.adminSearchByPhone(ctx, chatID, msg.Text)
	case StateAwaitingUserPhone:
		session.Reset()

		return d.userSearch(ctx, chatID, msg.Text)
	case StateAIChat:
		return d.receiveChatMessage(ctx, chatID, msg.Text, session)
	case StateAIImage:
		return d.receiveAnalysisImage(ctx, chatID, msg, session)
	default:
		return nil
	}
}

func (d *Dispatcher) handleCommand(ctx context.Context, msg *Message) error {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	fields := strings.Fields(msg.Text)
	command, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	switch command {
	case "/start":
		return d.startCommand(ctx, chatID, msg.From)
	case "/admin":
		return d.adminCommand(ctx, chatID, userID)
	case "/help":
		return d.send(ctx, chatID, msgUserHelp, nil)
	case "/search":
		if len(args) > 0 {
			return d.userSearch(ctx, chatID, args[0])
		}

		d.sessions.Get(chatID).State = StateAwaitingUserPhone

		return d.send(ctx, chatID, msgAskUserSearchPhone, nil)
	case "/cancel":
		return d.cancelCommand(ctx, chatID)
	case "/confirm":
		return d.confirmCommand(ctx, chatID, userID, args)
	case "/remind":
		return d.remindCommand(ctx, chatID, userID, args)
	case "/verify":
		return d.verifyCommand(ctx, chatID, userID, args)
	case "/ai":
		return d.aiCommand(ctx, chatID)
	default:
		return nil
	}
}

func (d *Dispatcher) startCommand(ctx context.Context, chatID int64, from *User) error {
	promoted, err := d.adminUC.BootstrapAdmin(ctx, from.ID)
	if err != nil {
		return err
	}

	if promoted {
		d.logger.Info("first contact promoted to administrator", slog.Int64("telegramID", from.ID))

		return d.send(ctx, chatID, msgPromotedToAdmin(from.FirstName), nil)
	}

	isAdmin, err := d.adminUC.IsAdmin(ctx, from.ID)
	if err != nil {
		return err
	}

	if isAdmin {
		return d.send(ctx, chatID, msgAdminWelcome(from.FirstName), adminPanelKeyboard())
	}

	return d.send(ctx, chatID, msgUserWelcome(from.FirstName), nil)
}

func (d *Dispatcher) adminCommand(ctx context.Context, chatID, userID int64) error {
	if ok := d.requireAdmin(ctx, chatID, userID); !ok {
		return nil
	}

	return d.send(ctx, chatID, d.adminPanelText(ctx), adminPanelKeyboard())
}

// adminPanelText renders the control-panel greeting with the stored
// notification total. The count is best-effort; the panel still opens when
// the store is unreachable.
func (d *Dispatcher) adminPanelText(ctx context.Context) string {
	total, err := d.notificationUC.CountNotifications(ctx)
	if err != nil {
		d.logger.Warn("failed to count notifications for admin panel", slog.Any("error", err))

		return msgAdminPanel
	}

	return msgAdminPanelWithTotal(total)
}

func (d *Dispatcher) cancelCommand(ctx context.Context, chatID int64) error {
	session := d.sessions.Get(chatID)
	text := msgOperationCanceled
	if session.State == StateAIChat || session.State == StateAIImage {
		text = msgAICanceled
	}
	// Cancel ends the conversation outright, so release the entry instead
	// of keeping an idle session around.
	d.sessions.Drop(chatID)

	return d.send(ctx, chatID, text, nil)
}

func (d *Dispatcher) confirmCommand(ctx context.Context, chatID, userID int64, args []string) error {
	if ok := d.requireAdmin(ctx, chatID, userID); !ok {
		return nil
	}
	if len(args) == 0 {
		return d.send(ctx, chatID, msgConfirmUsage, nil)
	}

	notification, err := d.notificationUC.ConfirmDelivery(ctx, args[0], nil)
	if err != nil {
		return d.send(ctx, chatID, msgNotificationNotFound(args[0]), nil)
	}

	return d.send(ctx, chatID, msgDeliveryConfirmed(notification), nil)
}

func (d *Dispatcher) remindCommand(ctx context.Context, chatID, userID int64, args []string) error {
	if ok := d.requireAdmin(ctx, chatID, userID); !ok {
		return nil
	}
	if len(args) == 0 {
		return d.send(ctx, chatID, msgRemindUsage, nil)
	}

	notification, err := d.notificationUC.GetNotification(ctx, args[0])
	if err != nil {
		return d.send(ctx, chatID, msgNotificationNotFound(args[0]), nil)
	}

	if err := d.reminderUC.SendReminder(ctx, notification); err != nil {
		d.logger.Error("manual reminder failed",
			slog.String("notificationID", notification.ID.String()),
			slog.Any("error", err),
		)

		return d.send(ctx, chatID, msgReminderSendFailed(), nil)
	}

	return d.send(ctx, chatID, msgReminderSentOK(notification), nil)
}

func (d *Dispatcher) verifyCommand(ctx context.Context, chatID, userID int64, args []string) error {
	if ok := d.requireAdmin(ctx, chatID, userID); !ok {
		return nil
	}
	if len(args) == 0 {
		return d.send(ctx, chatID, msgVerifyUsage, nil)
	}

	notification, err := d.notificationUC.GetNotification(ctx, args[0])
	if err != nil {
		return d.send(ctx, chatID, msgNotificationNotFound(args[0]), nil)
	}

	if err := d.reminderUC.SendVerification(ctx, notification); err != nil {
		d.logger.Error("verification dispatch failed",
			slog.String("notificationID", notification.ID.String()),
			slog.Any("error", err),
		)

		return d.send(ctx, chatID, msgVerificationSendFailed(), nil)
	}

	return d.send(ctx, chatID, msgVerificationSentOK(notification), nil)
}

func (d *Dispatcher) aiCommand(ctx context.Context, chatID int64) error {
	if !d.aiEnabled() {
		return d.send(ctx, chatID, msgAIUnavailable, nil)
	}

	session := d.sessions.Get(chatID)
	session.Reset()

	return d.send(ctx, chatID, msgAIPanel, aiPanelKeyboard())
}

func (d *Dispatcher) aiEnabled() bool {
	return d.cfg.Vision != nil && d.cfg.Vision.Endpoint != ""
}

// requireAdmin replies with the admin-only message and reports false when
// the user is not an administrator.
func (d *Dispatcher) requireAdmin(ctx context.Context, chatID, userID int64) bool {
	isAdmin, err := d.adminUC.IsAdmin(ctx, userID)
	if err != nil {
		d.logger.Error("admin check failed", slog.Int64("telegramID", userID), slog.Any("error", err))

		return false
	}
	if !isAdmin {
		if err := d.send(ctx, chatID, msgAdminOnly, nil); err != nil {
			d.logger.Error("failed to send admin-only notice", slog.Any("error", err))
		}

		return false
	}

	return true
}

func (d *Dispatcher) receiveNotificationImage(ctx context.Context, chatID int64, msg *Message, session *Session) error {
	photo := msg.LargestPhoto()
	if photo == nil {
		return d.send(ctx, chatID, msgAskImage, nil)
	}

	path, err := d.storePhoto(ctx, photo.FileID)
	if err != nil {
		return err
	}

	session.ImagePath = path
	session.State = StateAwaitingDays

	return d.send(ctx, chatID, msgAskReminderDays, nil)
}

func (d *Dispatcher) receiveReminderDays(ctx context.Context, chatID int64, text string, session *Session) error {
	days, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return d.send(ctx, chatID, msgDaysNotNumeric, nil)
	}
	if days < 1 {
		return d.send(ctx, chatID, msgDaysTooSmall, nil)
	}

	notification, err := d.notificationUC.CreateNotification(ctx, usecase.CreateNotificationInput{
		CustomerName: session.CustomerName,
		PhoneNumber:  session.PhoneNumber,
		ImagePath:    session.ImagePath,
		ReminderDays: days,
	})
	if err != nil {
		return err
	}

	session.Reset()

	if err := d.send(ctx, chatID, msgNotificationAdded(notification, days), nil); err != nil {
		return err
	}

	d.sendNotificationPhoto(ctx, chatID, notification, msgNotificationImageCaption(notification))

	return nil
}

func (d *Dispatcher) receiveAdminID(ctx context.Context, chatID, userID int64, text string, session *Session) error {
	adminID, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return d.send(ctx, chatID, msgInvalidAdminID, nil)
	}

	action := session.AdminAction
	session.Reset()

	switch action {
	case adminActionAdd:
		if _, err := d.adminUC.AddAdmin(ctx, adminID); err != nil {
			return d.send(ctx, chatID, msgAdminAddFailed(), backToManageAdminsKeyboard())
		}

		return d.send(ctx, chatID, msgAdminAdded(adminID), backToManageAdminsKeyboard())
	case adminActionRemove:
		if adminID == userID {
			return d.send(ctx, chatID, msgCannotRemoveSelf, backToManageAdminsKeyboard())
		}

		alreadyAbsent, err := d.adminUC.RemoveAdmin(ctx, adminID)
		if err != nil || alreadyAbsent {
			return d.send(ctx, chatID, msgAdminRemoveFailed(), backToManageAdminsKeyboard())
		}

		return d.send(ctx, chatID, msgAdminRemoved(adminID), backToManageAdminsKeyboard())
	default:
		return nil
	}
}

func (d *Dispatcher) receiveTemplateText(ctx context.Context, chatID int64, text string, session *Session) error {
	name := session.TemplateName
	session.Reset()

	if err := d.templateUC.UpdateTemplate(ctx, name, text); err != nil {
		return d.send(ctx, chatID, msgTemplateUpdateFailed(name), backToManageTemplatesKeyboard())
	}

	return d.send(ctx, chatID, msgTemplateUpdated(name), backToManageTemplatesKeyboard())
}

func (d *Dispatcher) adminSearchByName(ctx context.Context, chatID int64, query string) error {
	results, err := d.notificationUC.SearchByName(ctx, query)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		return d.send(ctx, chatID, msgSearchByNameEmpty(query), backToAdminKeyboard())
	}

	if err := d.send(ctx, chatID, msgSearchByNameResults(query, results), backToAdminKeyboard()); err != nil {
		return err
	}

	d.sendResultPhotos(ctx, chatID, results, msgSearchImageCaption)

	return nil
}

func (d *Dispatcher) adminSearchByPhone(ctx context.Context, chatID int64, query string) error {
	results, err := d.notificationUC.SearchByPhone(ctx, query)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		return d.send(ctx, chatID, msgSearchByPhoneEmpty(query), backToAdminKeyboard())
	}

	if err := d.send(ctx, chatID, msgSearchByPhoneResults(query, results), backToAdminKeyboard()); err != nil {
		return err
	}

	d.sendResultPhotos(ctx, chatID, results, msgSearchImageCaption)

	return nil
}

// userSearch is the public phone lookup. It masks the stored numbers.
func (d *Dispatcher) userSearch(ctx context.Context, chatID int64, query string) error {
	results, err := d.notificationUC.SearchByPhone(ctx, query)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		return d.send(ctx, chatID, msgUserSearchEmpty(query), nil)
	}

	if err := d.send(ctx, chatID, msgUserSearchResults(query, results), nil); err != nil {
		return err
	}

	d.sendResultPhotos(ctx, chatID, results, msgUserImageCaption)

	return nil
}

func (d *Dispatcher) receiveChatMessage(ctx context.Context, chatID int64, text string, session *Session) error {
	session.ChatTurns = append(session.ChatTurns, service.ChatTurn{Role: "user", Content: text})

	// Phone numbers in the message short-circuit to a notification lookup.
	if numbers := extract.PhoneNumbers(text); len(numbers) > 0 {
		var results []*entity.ShipmentNotification
		for _, number := range numbers {
			found, err := d.notificationUC.SearchByPhone(ctx, number)
			if err != nil {
				return err
			}
			results = append(results, found...)
		}

		if len(results) > 0 {
			reply := msgChatPhoneMatches(results)
			session.ChatTurns = append(session.ChatTurns, service.ChatTurn{Role: "assistant", Content: reply})

			if err := d.send(ctx, chatID, reply, nil); err != nil {
				return err
			}

			d.sendResultPhotos(ctx, chatID, results, msgSearchImageCaption)

			return nil
		}
	}

	reply, err := d.analyzer.Chat(ctx, session.ChatTurns)
	if err != nil {
		d.logger.Error("assisted chat failed", slog.Any("error", err))

		return d.send(ctx, chatID, msgAIChatFailed, nil)
	}

	session.ChatTurns = append(session.ChatTurns, service.ChatTurn{Role: "assistant", Content: reply})

	return d.send(ctx, chatID, reply, nil)
}

func (d *Dispatcher) receiveAnalysisImage(ctx context.Context, chatID int64, msg *Message, session *Session) error {
	photo := msg.LargestPhoto()
	if photo == nil {
		return d.send(ctx, chatID, msgAIImageIntro, nil)
	}

	image, err := d.messenger.DownloadFile(ctx, photo.FileID)
	if err != nil {
		return err
	}

	analysis, err := d.analyzer.AnalyzeImage(ctx, image)
	if err != nil {
		d.logger.Error("image analysis failed", slog.Any("error", err))

		return d.send(ctx, chatID, msgAINoExtract, nil)
	}

	info := extract.ShippingInfoFrom(analysis)
	if info == (extract.ShippingInfo{}) {
		return d.send(ctx, chatID, msgAINoExtract, nil)
	}

	session.Extracted = info

	// Keep a permanent copy only when the extraction can become a
	// notification.
	if info.Complete() {
		path, err := d.saveImage(ctx, image)
		if err != nil {
			return err
		}
		session.ImagePath = path
	}

	return d.send(ctx, chatID, msgImageAnalysis(ImageAnalysis{
		CustomerName: info.CustomerName,
		PhoneNumber:  info.PhoneNumber,
		ShippingDate: info.ShippingDate,
		Destination:  info.Destination,
		Value:        info.Value,
		FullAnalysis: analysis,
	}), extractConfirmKeyboard(info.Complete() && session.ImagePath != ""))
}

func (d *Dispatcher) handleCallback(ctx context.Context, cb *CallbackQuery) error {
	if err := d.messenger.AnswerCallbackQuery(ctx, cb.ID, ""); err != nil {
		d.logger.Warn("failed to answer callback query", slog.Any("error", err))
	}

	if cb.Message == nil {
		return nil
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	userID := cb.From.ID
	session := d.sessions.Get(chatID)

	// Assisted-flow callbacks are open to every chat that started /ai.
	switch cb.Data {
	case cbAIChat:
		session.State = StateAIChat
		session.ChatTurns = nil

		return d.edit(ctx, chatID, messageID, msgAIChatIntro, nil)
	case cbAIImage:
		session.State = StateAIImage

		return d.edit(ctx, chatID, messageID, msgAIImageIntro, nil)
	case cbAICancel:
		session.Reset()

		return d.edit(ctx, chatID, messageID, msgAICanceled, nil)
	case cbExtractConfirm:
		return d.confirmExtraction(ctx, chatID, messageID, session)
	}

	isAdmin, err := d.adminUC.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return d.edit(ctx, chatID, messageID, msgAdminOnly, nil)
	}

	switch cb.Data {
	case cbListNotifications:
		return d.showNotificationsPage(ctx, chatID, messageID, session, 1)
	case cbPrevPage:
		return d.showNotificationsPage(ctx, chatID, messageID, session, session.Page-1)
	case cbNextPage:
		return d.showNotificationsPage(ctx, chatID, messageID, session, session.Page+1)
	case cbBackToAdmin:
		return d.edit(ctx, chatID, messageID, d.adminPanelText(ctx), adminPanelKeyboard())
	case cbAddNotification:
		session.State = StateAwaitingName

		return d.edit(ctx, chatID, messageID, msgAskCustomerNameInline, nil)
	case cbAdminHelp:
		return d.edit(ctx, chatID, messageID, msgAdminHelp, backToAdminKeyboard())
	case cbSearchByName:
		session.State = StateAwaitingSearchName

		return d.edit(ctx, chatID, messageID, msgAskSearchName, nil)
	case cbSearchByPhone:
		session.State = StateAwaitingSearchPhone

		return d.edit(ctx, chatID, messageID, msgAskSearchPhone, nil)
	case cbManageAdmins:
		admins, err := d.adminUC.ListAdmins(ctx)
		if err != nil {
			return err
		}

		return d.edit(ctx, chatID, messageID, msgAdminList(admins), manageAdminsKeyboard())
	case cbAddAdmin:
		session.State = StateAwaitingAdminID
		session.AdminAction = adminActionAdd

		return d.edit(ctx, chatID, messageID, msgAskNewAdminID, nil)
	case cbRemoveAdmin:
		session.State = StateAwaitingAdminID
		session.AdminAction = adminActionRemove

		return d.edit(ctx, chatID, messageID, msgAskRemoveAdminID, nil)
	case cbResetAdmins:
		if err := d.adminUC.ResetAdmins(ctx); err != nil {
			return err
		}
		if _, err := d.adminUC.AddAdmin(ctx, userID); err != nil {
			return err
		}

		return d.edit(ctx, chatID, messageID, msgAdminsReset, backToManageAdminsKeyboard())
	case cbManageTemplates:
		templates, err := d.templateUC.GetTemplates(ctx)
		if err != nil {
			return err
		}

		return d.edit(ctx, chatID, messageID, msgTemplateOverview(templates), manageTemplatesKeyboard())
	case cbEditSMSTemplate:
		return d.startTemplateEdit(ctx, chatID, messageID, session, entity.TemplateSMS)
	case cbEditWelcomeTemplate:
		return d.startTemplateEdit(ctx, chatID, messageID, session, entity.TemplateWelcome)
	case cbEditVerificationTemplate:
		return d.startTemplateEdit(ctx, chatID, messageID, session, entity.TemplateVerification)
	default:
		return nil
	}
}

func (d *Dispatcher) startTemplateEdit(ctx context.Context, chatID, messageID int64, session *Session, name string) error {
	template, err := d.templateUC.GetTemplate(ctx, name)
	if err != nil {
		return err
	}

	session.State = StateAwaitingTemplateText
	session.TemplateName = name

	return d.edit(ctx, chatID, messageID, msgAskTemplateText(name, template.Text), nil)
}

func (d *Dispatcher) showNotificationsPage(ctx context.Context, chatID, messageID int64, session *Session, page int) error {
	result, err := d.notificationUC.ListNotificationsPage(ctx, page)
	if err != nil {
		return err
	}

	if result.Total == 0 {
		return d.edit(ctx, chatID, messageID, msgNoNotifications, backToAdminKeyboard())
	}

	session.Page = result.Page
	session.TotalPages = result.TotalPages

	return d.edit(ctx, chatID, messageID,
		msgNotificationPage(result.Items, result.Page, result.TotalPages),
		pageNavKeyboard(result.Page, result.TotalPages))
}

func (d *Dispatcher) confirmExtraction(ctx context.Context, chatID, messageID int64, session *Session) error {
	info := session.Extracted
	imagePath := session.ImagePath
	session.Reset()

	if !info.Complete() || imagePath == "" {
		return d.edit(ctx, chatID, messageID, msgExtractFailed, nil)
	}

	notification, err := d.notificationUC.CreateNotification(ctx, usecase.CreateNotificationInput{
		CustomerName: info.CustomerName,
		PhoneNumber:  info.PhoneNumber,
		ImagePath:    imagePath,
		ReminderDays: aiDefaultReminderDays,
	})
	if err != nil {
		d.logger.Error("failed to create notification from extraction", slog.Any("error", err))

		return d.edit(ctx, chatID, messageID, msgExtractFailed, nil)
	}

	return d.edit(ctx, chatID, messageID, msgExtractCreated(notification, aiDefaultReminderDays), nil)
}

// storePhoto downloads a Telegram photo and persists it in the image store
// under a fresh name.
func (d *Dispatcher) storePhoto(ctx context.Context, fileID string) (string, error) {
	data, err := d.messenger.DownloadFile(ctx, fileID)
	if err != nil {
		return "", err
	}

	return d.saveImage(ctx, data)
}

func (d *Dispatcher) saveImage(ctx context.Context, data []byte) (string, error) {
	return d.images.Save(ctx, uuid.New().String()+".jpg", data)
}

// sendResultPhotos sends the stored image of each result. Failures are
// reported to the chat but never abort the listing.
func (d *Dispatcher) sendResultPhotos(ctx context.Context, chatID int64, results []*entity.ShipmentNotification, caption func(*entity.ShipmentNotification) string) {
	for _, notification := range results {
		d.sendNotificationPhoto(ctx, chatID, notification, caption(notification))
	}
}

func (d *Dispatcher) sendNotificationPhoto(ctx context.Context, chatID int64, notification *entity.ShipmentNotification, caption string) {
	data, err := d.images.Load(ctx, notification.ImagePath)
	if err == nil {
		err = d.messenger.SendPhoto(ctx, chatID, notification.ShortID()+".jpg", data, caption)
	}
	if err != nil {
		d.logger.Error("failed to send notification image",
			slog.String("notificationID", notification.ID.String()),
			slog.Any("error", err),
		)
		if sendErr := d.send(ctx, chatID, msgImageSendFailed(notification), nil); sendErr != nil {
			d.logger.Error("failed to report image error", slog.Any("error", sendErr))
		}
	}
}

func (d *Dispatcher) send(ctx context.Context, chatID int64, text string, keyboard service.InlineKeyboard) error {
	_, err := d.messenger.SendMessage(ctx, chatID, text, keyboard)

	return err
}

func (d *Dispatcher) edit(ctx context.Context, chatID, messageID int64, text string, keyboard service.InlineKeyboard) error {
	return d.messenger.EditMessageText(ctx, chatID, messageID, text, keyboard)
}
