package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Product names listed in a commission notification before truncation.
	maxNotifiedProducts = 3

	defaultMaxAttempts   = 3
	defaultRetryDelay    = 100 * time.Millisecond
	defaultNotifyTimeout = 5 * time.Second
)

var oneHundred = decimal.NewFromInt(100)

type settlementService struct {
	txManager      repository.TransactionManager
	commissionRepo repository.CommissionRepository
	rateRuleRepo   repository.RateRuleRepository
	accountRepo    repository.AccountRepository
	notifier       service.Notifier
	logger         *slog.Logger
	maxAttempts    int
	retryDelay     time.Duration
	notifyTimeout  time.Duration
}

// NewSettlementService creates the settlement engine. maxAttempts bounds the
// retries on transient storage failures; retryDelay spaces them out;
// notifyTimeout caps each best-effort notification call. Non-positive values
// fall back to defaults.
func NewSettlementService(
	txManager repository.TransactionManager,
	commissionRepo repository.CommissionRepository,
	rateRuleRepo repository.RateRuleRepository,
	accountRepo repository.AccountRepository,
	notifier service.Notifier,
	logger *slog.Logger,
	maxAttempts int,
	retryDelay time.Duration,
	notifyTimeout time.Duration,
) usecase.SettlementUsecase {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}

	return &settlementService{
		txManager:      txManager,
		commissionRepo: commissionRepo,
		rateRuleRepo:   rateRuleRepo,
		accountRepo:    accountRepo,
		notifier:       notifier,
		logger:         logger,
		maxAttempts:    maxAttempts,
		retryDelay:     retryDelay,
		notifyTimeout:  notifyTimeout,
	}
}

// SettleOrder runs one settlement pass for the order. The pass is atomic:
// the idempotency guard and every ledger write share one transaction holding
// a row lock on the order, so a retry either creates the full set of entries
// or none. Duplicate triggers resolve to AlreadySettled.
func (s *settlementService) SettleOrder(ctx context.Context, orderID uuid.UUID) (*usecase.SettlementResult, error) {
	// Rate configuration tolerates stale reads; load the snapshot before the
	// transaction to keep the lock window short.
	rules, err := s.rateRuleRepo.FindActiveRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate rules: %w", err)
	}
	resolver := NewRateResolver(rules)

	var (
		created       []*entity.Commission
		contributions map[uuid.UUID][]string
	)

	for attempt := 1; ; attempt++ {
		created, contributions, err = s.settleOnce(ctx, orderID, resolver)
		if err == nil {
			break
		}

		if errors.Is(err, domainerrors.ErrAlreadySettled) {
			return &usecase.SettlementResult{AlreadySettled: true}, nil
		}
		if errors.Is(err, domainerrors.ErrOrderNotDelivered) || errors.Is(err, repository.ErrOrderNotFound) {
			return nil, err
		}

		// Anything else is lock contention or storage trouble; retry up to
		// maxAttempts, then surface a transient error the caller (or the
		// sweeper) can act on later.
		s.logger.Warn("settlement attempt failed",
			slog.String("order_id", orderID.String()),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		if attempt >= s.maxAttempts {
			return nil, fmt.Errorf("%w: order %s: %v", domainerrors.ErrSettlementUnavailable, orderID, err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: order %s: %v", domainerrors.ErrSettlementUnavailable, orderID, ctx.Err())
		case <-time.After(s.retryDelay):
		}
	}

	s.dispatchNotifications(ctx, created, contributions)

	return &usecase.SettlementResult{CreatedCount: len(created)}, nil
}

// settleOnce performs a single guarded settlement transaction.
func (s *settlementService) settleOnce(ctx context.Context, orderID uuid.UUID, resolver *RateResolver) ([]*entity.Commission, map[uuid.UUID][]string, error) {
	var (
		created       []*entity.Commission
		contributions map[uuid.UUID][]string
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		commissionRepo := repoFactory.NewCommissionRepository()

		// Row lock on the order serializes concurrent settlement passes.
		order, err := orderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		if order.Status != entity.OrderStatusDelivered {
			return domainerrors.ErrOrderNotDelivered
		}

		exists, err := commissionRepo.ExistsForOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("failed to check existing commissions: %w", err)
		}
		if exists {
			return domainerrors.ErrAlreadySettled
		}

		created, contributions, err = s.computeCommissions(ctx, order, resolver)
		if err != nil {
			return err
		}
		if len(created) == 0 {
			return nil
		}

		if err := commissionRepo.CreateCommissions(ctx, created); err != nil {
			// The unique (order, beneficiary) constraint is the final
			// backstop against a pass that slipped past the guard.
			if errors.Is(err, repository.ErrDuplicateCommission) {
				return domainerrors.ErrAlreadySettled
			}

			return fmt.Errorf("failed to create commissions: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return created, contributions, nil
}

// beneficiaryAccumulator collects one beneficiary's share across order lines.
type beneficiaryAccumulator struct {
	id       uuid.UUID
	amount   decimal.Decimal
	rates    []decimal.Decimal
	products []string
}

// computeCommissions resolves each line's beneficiary, aggregates amounts per
// beneficiary, and appends the buyer-side commission on the order total.
// Amounts stay unrounded until a beneficiary's total is finalized.
func (s *settlementService) computeCommissions(ctx context.Context, order *entity.Order, resolver *RateResolver) ([]*entity.Commission, map[uuid.UUID][]string, error) {
	ownerRole, err := s.lookupRole(ctx, order.OwnerID, entity.RoleBuyer)
	if err != nil {
		return nil, nil, err
	}

	var (
		ordered      []uuid.UUID
		accumulators = make(map[uuid.UUID]*beneficiaryAccumulator)
		sellerRoles  = make(map[uuid.UUID]entity.Role)
	)

	accumulate := func(id uuid.UUID, rate decimal.Decimal, amount decimal.Decimal, products ...string) {
		acc, ok := accumulators[id]
		if !ok {
			acc = &beneficiaryAccumulator{id: id, amount: decimal.Zero}
			accumulators[id] = acc
			ordered = append(ordered, id)
		}
		acc.amount = acc.amount.Add(amount)
		acc.rates = append(acc.rates, rate)
		acc.products = append(acc.products, products...)
	}

	for _, line := range order.Lines {
		var (
			beneficiaryID uuid.UUID
			role          entity.Role
		)

		switch {
		case line.SellerID != nil:
			beneficiaryID = *line.SellerID
			role, err = s.sellerRole(ctx, beneficiaryID, sellerRoles)
			if err != nil {
				return nil, nil, err
			}
		case ownerRole == entity.RoleSeller:
			// A seller-less line credits the order owner, but only when the
			// owner actually is a seller.
			beneficiaryID = order.OwnerID
			role = ownerRole
		default:
			continue
		}

		rate := resolver.Resolve(role, line.Category)
		amount := line.LineTotal().Mul(rate).Div(oneHundred)
		accumulate(beneficiaryID, rate, amount, line.ProductName)
	}

	// Buyer-side commission on the full order total, resolved from the
	// owner's role with no category. Folded into the owner's seller-side
	// share when both apply, so one order never carries two rows for the
	// same beneficiary.
	buyerRate := resolver.Resolve(ownerRole, "")
	buyerAmount := order.TotalAmount.Mul(buyerRate).Div(oneHundred)
	if buyerAmount.IsPositive() {
		if _, ok := accumulators[order.OwnerID]; ok {
			accumulate(order.OwnerID, buyerRate, buyerAmount)
		} else {
			products := make([]string, 0, len(order.Lines))
			for _, line := range order.Lines {
				products = append(products, line.ProductName)
			}
			accumulate(order.OwnerID, buyerRate, buyerAmount, products...)
		}
	}

	now := time.Now()
	commissions := make([]*entity.Commission, 0, len(ordered))
	contributions := make(map[uuid.UUID][]string, len(ordered))

	for _, id := range ordered {
		acc := accumulators[id]

		// Half-up rounding happens exactly once, on the finalized total.
		amount := acc.amount.Round(2)
		if !amount.IsPositive() {
			continue
		}

		commissions = append(commissions, &entity.Commission{
			ID:            uuid.New(),
			OrderID:       order.ID,
			BeneficiaryID: id,
			Amount:        amount,
			Rate:          decimal.Avg(acc.rates[0], acc.rates[1:]...).Round(2),
			CreatedAt:     now,
		})
		contributions[id] = acc.products
	}

	return commissions, contributions, nil
}

// sellerRole resolves a seller's role with per-pass memoization. A seller
// without a stored profile defaults to the seller role.
func (s *settlementService) sellerRole(ctx context.Context, sellerID uuid.UUID, cache map[uuid.UUID]entity.Role) (entity.Role, error) {
	if role, ok := cache[sellerID]; ok {
		return role, nil
	}

	role, err := s.lookupRole(ctx, sellerID, entity.RoleSeller)
	if err != nil {
		return "", err
	}
	cache[sellerID] = role

	return role, nil
}

// lookupRole returns the account's role, falling back to the given default
// when the account has no profile or an unknown role. Storage failures
// propagate so the pass can retry.
func (s *settlementService) lookupRole(ctx context.Context, accountID uuid.UUID, fallback entity.Role) (entity.Role, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return fallback, nil
		}

		return "", fmt.Errorf("failed to resolve role for account %s: %w", accountID, err)
	}

	if !account.Role.IsValid() {
		return fallback, nil
	}

	return account.Role, nil
}

// dispatchNotifications sends one best-effort message per created ledger
// entry. Failures are logged and never affect the committed ledger.
func (s *settlementService) dispatchNotifications(ctx context.Context, created []*entity.Commission, contributions map[uuid.UUID][]string) {
	for _, commission := range created {
		message := buildCommissionMessage(commission, contributions[commission.BeneficiaryID])

		notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
		err := s.notifier.Notify(notifyCtx, commission.BeneficiaryID, message)
		cancel()

		if err != nil {
			s.logger.Warn("failed to notify beneficiary",
				slog.String("order_id", commission.OrderID.String()),
				slog.String("beneficiary_id", commission.BeneficiaryID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// buildCommissionMessage summarizes a ledger entry for its beneficiary,
// truncating the contributing product list after three names.
func buildCommissionMessage(commission *entity.Commission, products []string) string {
	description := strings.Join(products, ", ")
	if len(products) > maxNotifiedProducts {
		description = fmt.Sprintf("%s and %d more",
			strings.Join(products[:maxNotifiedProducts], ", "),
			len(products)-maxNotifiedProducts,
		)
	}

	message := fmt.Sprintf("You earned a commission of %s (rate %s%%) on order %s",
		commission.Amount.StringFixed(2),
		commission.Rate.StringFixed(2),
		commission.OrderID,
	)
	if description != "" {
		message = fmt.Sprintf("%s for %s", message, description)
	}

	return message
}

// GetCommissionsForOrder lists the ledger entries of one order.
func (s *settlementService) GetCommissionsForOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Commission, error) {
	return s.commissionRepo.FindCommissionsByOrder(ctx, orderID)
}

// GetCommissionsForBeneficiary lists the ledger entries credited to one
// beneficiary.
func (s *settlementService) GetCommissionsForBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) ([]*entity.Commission, error) {
	return s.commissionRepo.FindCommissionsByBeneficiary(ctx, beneficiaryID)
}
