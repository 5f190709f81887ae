package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	saleRepo "salonflow/database/repository/sale"
	"salonflow/models"
	"salonflow/services/appointment"
	"salonflow/utils"
)

const cartTTL = 4 * time.Hour

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrUnknownMethod  = errors.New("unsupported payment method")
	ErrPaymentFailed  = errors.New("card payment failed")
	ErrLineOutOfRange = errors.New("cart line index out of range")
)

// Service runs the register: one open cart per staff member, held in Redis
// until checkout turns it into a Sale.
type Service interface {
	GetCart(ctx context.Context, staffID string) (*models.Cart, error)
	AddLine(ctx context.Context, staffID string, line models.SaleLine) (*models.Cart, error)
	RemoveLine(ctx context.Context, staffID string, index int) (*models.Cart, error)
	AttachAppointment(ctx context.Context, staffID, appointmentID, clientID string) (*models.Cart, error)
	ClearCart(ctx context.Context, staffID string) error
	Checkout(ctx context.Context, staffID, method, cardToken string) (*models.Sale, error)
}

type DefaultCheckoutService struct {
	Cache        *redis.Client
	Sales        saleRepo.SaleRepository
	Appointments appointment.Service
	Currency     string
}

func cartKey(staffID string) string {
	return "cart:" + staffID
}

func (s *DefaultCheckoutService) GetCart(ctx context.Context, staffID string) (*models.Cart, error) {
	data, err := s.Cache.Get(ctx, cartKey(staffID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &models.Cart{StaffID: staffID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

func (s *DefaultCheckoutService) saveCart(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.Cache.Set(ctx, cartKey(cart.StaffID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *DefaultCheckoutService) AddLine(ctx context.Context, staffID string, line models.SaleLine) (*models.Cart, error) {
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	cart, err := s.GetCart(ctx, staffID)
	if err != nil {
		return nil, err
	}
	cart.Lines = append(cart.Lines, line)
	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *DefaultCheckoutService) RemoveLine(ctx context.Context, staffID string, index int) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart.Lines) {
		return nil, ErrLineOutOfRange
	}
	cart.Lines = append(cart.Lines[:index], cart.Lines[index+1:]...)
	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AttachAppointment ties the ticket to an appointment so a successful
// checkout marks it paid.
func (s *DefaultCheckoutService) AttachAppointment(ctx context.Context, staffID, appointmentID, clientID string) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, staffID)
	if err != nil {
		return nil, err
	}
	cart.AppointmentID = appointmentID
	cart.ClientID = clientID
	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *DefaultCheckoutService) ClearCart(ctx context.Context, staffID string) error {
	return s.Cache.Del(ctx, cartKey(staffID)).Err()
}

func (s *DefaultCheckoutService) Checkout(ctx context.Context, staffID, method, cardToken string) (*models.Sale, error) {
	logger := utils.GetLogger()

	cart, err := s.GetCart(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	sale := &models.Sale{
		ID:            uuid.New().String(),
		StaffID:       staffID,
		ClientID:      cart.ClientID,
		AppointmentID: cart.AppointmentID,
		Lines:         cart.Lines,
		Total:         cart.Total(),
		Currency:      s.Currency,
		Method:        method,
	}

	switch method {
	case "cash":
		// Nothing to capture.
	case "card":
		paymentID, err := s.captureCard(sale.Total, cardToken)
		if err != nil {
			logger.Warn("card capture failed", zap.String("staffId", staffID), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
		}
		sale.PaymentID = paymentID
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	if err := s.Sales.Create(ctx, sale); err != nil {
		return nil, err
	}

	if sale.AppointmentID != "" {
		if err := s.Appointments.MarkPaid(ctx, sale.AppointmentID); err != nil {
			// The sale is already recorded; a failed flag update is worth a
			// log line, not a rollback.
			logger.Error("failed to mark appointment paid",
				zap.String("appointmentId", sale.AppointmentID), zap.Error(err))
		}
	}

	if err := s.ClearCart(ctx, staffID); err != nil {
		logger.Warn("failed to clear cart after checkout", zap.String("staffId", staffID), zap.Error(err))
	}

	logger.Info("sale completed",
		zap.String("saleId", sale.ID),
		zap.String("method", method),
		zap.Float64("total", sale.Total))
	return sale, nil
}

func (s *DefaultCheckoutService) captureCard(total float64, cardToken string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(math.Round(total * 100))),
		Currency:      stripe.String(s.Currency),
		PaymentMethod: stripe.String(cardToken),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("payment intent status %s", pi.Status)
	}
	return pi.ID, nil
}
