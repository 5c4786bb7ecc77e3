package usecases

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"go.uber.org/zap"

	"e-commerce.backend/internal/domain/entities"
	"e-commerce.backend/pkg/logger"
)

// Email subjects
const (
	SubjectRegistered     = "Registration successful"
	SubjectVerifyRequest  = "Verify ur account"
	SubjectVerified       = "Account was verified"
	SubjectResetRequest   = "Reset pass"
	SubjectPasswordReset  = "Pass was reset"
	SubjectAccountDeleted = "Account was deleted"
	SubjectSellerOrder    = "New order for your goods"
	SubjectCustomerOrder  = "Order details"
)

// EmailPublisher hands an email to the outbound queue
type EmailPublisher interface {
	Publish(ctx context.Context, msg entities.EmailMessage) error
}

// Notifier emits lifecycle emails. Calls never fail the caller.
type Notifier interface {
	Registered(ctx context.Context, user *entities.User)
	VerifyRequested(ctx context.Context, user *entities.User, link string)
	Verified(ctx context.Context, user *entities.User)
	ResetRequested(ctx context.Context, user *entities.User, link string)
	PasswordReset(ctx context.Context, user *entities.User)
	AccountDeleted(ctx context.Context, user *entities.User)
	OrderPlaced(ctx context.Context, customerEmail string, items []entities.OrderedItem)
}

// NotificationUsecase formats emails and publishes them to the queue
type NotificationUsecase struct {
	publisher EmailPublisher
	from      string
	now       func() time.Time
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(publisher EmailPublisher, from string) *NotificationUsecase {
	return &NotificationUsecase{publisher: publisher, from: from, now: time.Now}
}

func (n *NotificationUsecase) publish(ctx context.Context, to, subject, body string) {
	msg := entities.EmailMessage{
		Subject: subject,
		From:    n.from,
		To:      to,
		Content: `<div><h1 style="color: red;">` + body + `</h1></div>`,
	}
	if err := n.publisher.Publish(ctx, msg); err != nil {
		logger.Error(ctx, "Failed to enqueue email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}

func (n *NotificationUsecase) greeting(user *entities.User) string {
	return "Hello, " + html.EscapeString(user.Username) + ", "
}

func (n *NotificationUsecase) clock() string {
	return n.now().Format("15:04:05")
}

func (n *NotificationUsecase) Registered(ctx context.Context, user *entities.User) {
	n.publish(ctx, user.Email, SubjectRegistered, n.greeting(user)+"your account was created successfully")
}

func (n *NotificationUsecase) VerifyRequested(ctx context.Context, user *entities.User, link string) {
	n.publish(ctx, user.Email, SubjectVerifyRequest,
		n.greeting(user)+"please verify your account by clicking on the link: "+html.EscapeString(link))
}

func (n *NotificationUsecase) Verified(ctx context.Context, user *entities.User) {
	n.publish(ctx, user.Email, SubjectVerified, n.greeting(user)+"your account was verified at "+n.clock())
}

func (n *NotificationUsecase) ResetRequested(ctx context.Context, user *entities.User, link string) {
	n.publish(ctx, user.Email, SubjectResetRequest,
		n.greeting(user)+"if you need to reset your account password, click on the link: "+html.EscapeString(link))
}

func (n *NotificationUsecase) PasswordReset(ctx context.Context, user *entities.User) {
	n.publish(ctx, user.Email, SubjectPasswordReset, n.greeting(user)+"your account password was reset at "+n.clock())
}

func (n *NotificationUsecase) AccountDeleted(ctx context.Context, user *entities.User) {
	n.publish(ctx, user.Email, SubjectAccountDeleted, n.greeting(user)+"your account was deleted at "+n.clock())
}

// OrderPlaced sends one email per distinct seller with that seller's goods,
// then one email to the customer with every good. Counts of the same good
// are summed.
func (n *NotificationUsecase) OrderPlaced(ctx context.Context, customerEmail string, items []entities.OrderedItem) {
	var sellers []string
	bySeller := make(map[string][]entities.OrderedItem)
	for _, item := range items {
		if _, ok := bySeller[item.SellerEmail]; !ok {
			sellers = append(sellers, item.SellerEmail)
		}
		bySeller[item.SellerEmail] = append(bySeller[item.SellerEmail], item)
	}

	for _, seller := range sellers {
		n.publish(ctx, seller, SubjectSellerOrder, "Hello, your goods were ordered: "+describeItems(bySeller[seller]))
	}
	n.publish(ctx, customerEmail, SubjectCustomerOrder, "Hello, your order: "+describeItems(items))
}

// describeItems renders "good (count: n)" entries in first-seen order
func describeItems(items []entities.OrderedItem) string {
	var names []string
	counts := make(map[string]int)
	for _, item := range items {
		if _, ok := counts[item.GoodName]; !ok {
			names = append(names, item.GoodName)
		}
		counts[item.GoodName] += item.Count
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (count: %d)", html.EscapeString(name), counts[name]))
	}
	return strings.Join(parts, ", ")
}
