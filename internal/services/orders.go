package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	apperrors "github.com/xenia-tech/xenia-backend/pkg/errors"
	"github.com/xenia-tech/xenia-backend/pkg/logger"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
	"gorm.io/gorm"
)

type RegistrationInput struct {
	EventID        string   `json:"eventId"`
	TeamMembers    []string `json:"teamMembers"`
	SelectedDomain string   `json:"selectedDomain"`
	SelectedPS     string   `json:"selectedPS"`
}

type CreateOrderInput struct {
	Registrations []RegistrationInput `json:"registrations"`
	TransactionID string              `json:"transactionId"`
}

type validatedRegistration struct {
	event          models.Event
	members        []models.User
	selectedDomain string
	selectedPS     string
}

// CreateOrder validates a team leader's registration submission and persists
// it as a PENDING order. All domain-rule violations are reported before
// anything is written; the unique indexes on order_id and transaction_id are
// the backstop for races the application-level checks cannot close.
func CreateOrder(leader models.User, input CreateOrderInput) (*models.Order, error) {
	if len(input.Registrations) == 0 {
		return nil, apperrors.BadRequest("At least one event registration is required")
	}

	txnID := strings.TrimSpace(input.TransactionID)
	if txnID != "" {
		var count int64
		if err := database.DB.Model(&models.Order{}).
			Where("transaction_id = ?", txnID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.Conflict("Transaction ID already used. Please use a unique transaction ID.")
		}
	}

	var totalAmount float64
	validated := make([]validatedRegistration, 0, len(input.Registrations))

	// The conflict check below only sees persisted orders, so repeats within
	// this submission are caught here. The leader sits on every roster, so two
	// registrations for the same event always share a member.
	seenEvents := make(map[string]bool, len(input.Registrations))

	for _, reg := range input.Registrations {
		v, err := validateRegistration(leader, reg)
		if err != nil {
			return nil, err
		}
		if seenEvents[v.event.ID] {
			return nil, apperrors.Conflict(fmt.Sprintf("Duplicate registration for %q in the same order", v.event.Name))
		}
		seenEvents[v.event.ID] = true
		totalAmount += v.event.Fees
		validated = append(validated, *v)
	}

	if totalAmount > 0 && txnID == "" {
		return nil, apperrors.BadRequest("Transaction ID is required")
	}

	order := &models.Order{
		ID:          utils.GenerateID(),
		UserID:      leader.ID,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusPending,
	}
	// Zero-fee orders carry no transaction reference; the sparse unique
	// index only constrains paid orders.
	if totalAmount > 0 {
		order.TransactionID = &txnID
	}

	for _, v := range validated {
		order.Registrations = append(order.Registrations, models.Registration{
			ID:             utils.GenerateID(),
			EventID:        v.event.ID,
			TeamMembers:    v.members,
			SelectedDomain: v.selectedDomain,
			SelectedPS:     v.selectedPS,
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		n, err := NextOrderNumber(tx)
		if err != nil {
			return err
		}
		order.OrderID = FormatOrderNumber(n)
		return tx.Create(order).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Transaction ID already used. Please use a unique transaction ID.")
		}
		return nil, err
	}

	logger.Info().
		Str("order_id", order.OrderID).
		Str("user", leader.Email).
		Float64("amount", order.TotalAmount).
		Msg("Order created")

	notifyOrderCreated(leader, *order, validated)

	return order, nil
}

func validateRegistration(leader models.User, reg RegistrationInput) (*validatedRegistration, error) {
	if !utils.IsUUID(reg.EventID) {
		return nil, apperrors.BadRequest(fmt.Sprintf("Invalid event ID: %s", reg.EventID))
	}

	var event models.Event
	if err := database.DB.First(&event, "id = ?", reg.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Event not found: %s", reg.EventID))
		}
		return nil, err
	}

	if !event.IsActive {
		return nil, apperrors.BadRequest(fmt.Sprintf("Event %q is not currently active", event.Name))
	}

	if len(reg.TeamMembers) == 0 {
		return nil, apperrors.BadRequest(fmt.Sprintf("Team members are required for %q", event.Name))
	}

	if len(reg.TeamMembers) < event.TeamSizeMin || len(reg.TeamMembers) > event.TeamSizeMax {
		return nil, apperrors.BadRequest(fmt.Sprintf(
			"Team size for %q must be between %d and %d members",
			event.Name, event.TeamSizeMin, event.TeamSizeMax))
	}

	leaderInTeam := false
	seen := make(map[string]bool, len(reg.TeamMembers))
	for _, memberID := range reg.TeamMembers {
		if !utils.IsUUID(memberID) {
			return nil, apperrors.BadRequest(fmt.Sprintf("Invalid team member ID: %s", memberID))
		}
		if seen[memberID] {
			return nil, apperrors.BadRequest(fmt.Sprintf("Duplicate team members found in %q", event.Name))
		}
		seen[memberID] = true
		if memberID == leader.ID {
			leaderInTeam = true
		}
	}
	if !leaderInTeam {
		return nil, apperrors.BadRequest("You (team leader) must be included in the team members list")
	}

	var members []models.User
	if err := database.DB.Where("id IN ?", reg.TeamMembers).Find(&members).Error; err != nil {
		return nil, err
	}
	if len(members) != len(reg.TeamMembers) {
		return nil, apperrors.NotFound("One or more team members not found")
	}

	conflicts, err := ConflictingMembers(event.ID, reg.TeamMembers)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		names := make([]string, 0, len(conflicts))
		for _, u := range conflicts {
			names = append(names, u.FullName())
		}
		return nil, apperrors.Conflict(fmt.Sprintf(
			"Following members are already registered for %q: %s",
			event.Name, strings.Join(names, ", ")))
	}

	if event.IsHackathon {
		if reg.SelectedDomain == "" || reg.SelectedPS == "" {
			return nil, apperrors.BadRequest(fmt.Sprintf(
				"Domain and Problem Statement selection required for hackathon %q", event.Name))
		}
		domain := event.FindDomain(reg.SelectedDomain)
		if domain == nil {
			return nil, apperrors.BadRequest(fmt.Sprintf(
				"Invalid domain %q for hackathon %q", reg.SelectedDomain, event.Name))
		}
		if domain.FindProblemStatement(reg.SelectedPS) == nil {
			return nil, apperrors.BadRequest(fmt.Sprintf(
				"Invalid problem statement %q in domain %q", reg.SelectedPS, domain.Name))
		}
	}

	return &validatedRegistration{
		event:          event,
		members:        members,
		selectedDomain: reg.SelectedDomain,
		selectedPS:     reg.SelectedPS,
	}, nil
}

// ConflictingMembers returns the users among memberIDs that already hold a
// non-rejected registration for the event, across all orders. Callers use the
// names for the error message; the scan is bounded by registrations per event.
func ConflictingMembers(eventID string, memberIDs []string) ([]models.User, error) {
	var ids []string
	err := database.DB.Table("registration_members").
		Joins("JOIN registrations ON registrations.id = registration_members.registration_id").
		Joins("JOIN orders ON orders.id = registrations.order_id").
		Where("registrations.event_id = ?", eventID).
		Where("orders.status IN ?", []models.OrderStatus{models.OrderStatusPending, models.OrderStatusVerified}).
		Where("registration_members.user_id IN ?", memberIDs).
		Distinct().
		Pluck("registration_members.user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var users []models.User
	if err := database.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func orderQuery() *gorm.DB {
	return database.DB.
		Preload("User").
		Preload("Registrations").
		Preload("Registrations.Event").
		Preload("Registrations.TeamMembers")
}

// FindOrderByAnyID looks an order up by primary key or by its human-readable
// ORD-prefixed ID.
func FindOrderByAnyID(id string) (*models.Order, error) {
	var order models.Order

	if utils.IsUUID(id) {
		err := orderQuery().First(&order, "id = ?", id).Error
		if err == nil {
			return &order, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	err := orderQuery().First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyOrder marks a PENDING or REJECTED order as VERIFIED. The transition
// is a guarded conditional update, so two admins racing on the same order
// cannot both succeed.
func VerifyOrder(id string) (*models.Order, error) {
	order, err := FindOrderByAnyID(id)
	if err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusVerified {
		return nil, apperrors.Conflict("Order is already verified")
	}

	now := time.Now()
	res := database.DB.Model(&models.Order{}).
		Where("id = ? AND status <> ?", order.ID, models.OrderStatusVerified).
		Updates(map[string]interface{}{
			"status":           models.OrderStatusVerified,
			"verified_at":      now,
			"rejection_reason": "",
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.Conflict("Order is already verified")
	}

	order.Status = models.OrderStatusVerified
	order.VerifiedAt = &now
	order.RejectionReason = ""

	logger.Info().Str("order_id", order.OrderID).Msg("Order verified")

	notifyOrderVerified(*order)

	return order, nil
}

// RejectOrder marks a non-VERIFIED order as REJECTED with a reason. Rejected
// orders may be re-evaluated later; verified ones cannot be rejected.
func RejectOrder(id, reason string) (*models.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.BadRequest("Rejection reason is required")
	}

	order, err := FindOrderByAnyID(id)
	if err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusVerified {
		return nil, apperrors.Conflict("Cannot reject a verified order")
	}

	res := database.DB.Model(&models.Order{}).
		Where("id = ? AND status <> ?", order.ID, models.OrderStatusVerified).
		Updates(map[string]interface{}{
			"status":           models.OrderStatusRejected,
			"rejection_reason": reason,
			"verified_at":      nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.Conflict("Cannot reject a verified order")
	}

	order.Status = models.OrderStatusRejected
	order.RejectionReason = reason
	order.VerifiedAt = nil

	logger.Info().Str("order_id", order.OrderID).Str("reason", reason).Msg("Order rejected")

	notifyOrderRejected(*order)

	return order, nil
}
