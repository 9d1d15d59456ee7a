package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/frontdesk_backend/internal/apperrors"
	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	portsrepo "github.com/hotelops/frontdesk_backend/internal/core/ports/repositories"
	portssvc "github.com/hotelops/frontdesk_backend/internal/core/ports/services"
	"github.com/hotelops/frontdesk_backend/internal/dto"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// cashService implements the CashSvcFacade interface: splitting gross
// payments into reception/office legs, posting ledger entries, and producing
// the dashboard rollups.
type cashService struct {
	BaseService
	cashRepo portsrepo.CashTransactionRepositoryFacade
	now      func() time.Time
	newID    func() string
}

// CashServiceOption is a functional option for configuring the cash service
type CashServiceOption func(*cashService)

// WithCashClock overrides the service's time source, used in tests.
func WithCashClock(now func() time.Time) CashServiceOption {
	return func(s *cashService) {
		s.now = now
	}
}

// WithCashIDGenerator overrides transaction ID generation, used in tests.
func WithCashIDGenerator(newID func() string) CashServiceOption {
	return func(s *cashService) {
		s.newID = newID
	}
}

// NewCashService creates a new cash service with the provided options
func NewCashService(repo portsrepo.CashTransactionRepositoryFacade, options ...CashServiceOption) portssvc.CashSvcFacade {
	svc := &cashService{
		cashRepo: repo,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure cashService implements the CashSvcFacade interface
var _ portssvc.CashSvcFacade = (*cashService)(nil)

// SplitAndPost splits a gross cash payment by the keep percentage and posts
// the resulting ledger entries. The send leg is derived by subtraction so the
// two legs always reconcile exactly to the gross amount. A percentage of 0 or
// 100 posts only the non-zero leg; zero-amount transactions are never
// created. Validation failures happen before any write.
func (s *cashService) SplitAndPost(ctx context.Context, req dto.SplitCashRequest, creatorUserID string) (*domain.CashSplit, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}
	if req.KeepPercent.IsNegative() || req.KeepPercent.GreaterThan(hundred) {
		return nil, apperrors.NewValidationError("keep percentage must be between 0 and 100")
	}
	source, err := ParseCashSource(req.Source)
	if err != nil {
		return nil, err
	}

	keep := req.Amount.Mul(req.KeepPercent).Div(hundred)
	send := req.Amount.Sub(keep)

	now := s.now()
	split := &domain.CashSplit{
		Gross:       req.Amount,
		KeepPercent: req.KeepPercent,
		KeepAmount:  keep,
		SendAmount:  send,
	}

	if keep.GreaterThan(decimal.Zero) {
		split.Transactions = append(split.Transactions, domain.CashTransaction{
			TransactionID: s.newID(),
			Amount:        keep,
			Type:          domain.CashKeep,
			Source:        source,
			Description:   splitDescription(req.Description, req.KeepPercent, "kept at reception"),
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
		})
	}
	if send.GreaterThan(decimal.Zero) {
		split.Transactions = append(split.Transactions, domain.CashTransaction{
			TransactionID: s.newID(),
			Amount:        send,
			Type:          domain.CashSent,
			Source:        source,
			Description:   splitDescription(req.Description, hundred.Sub(req.KeepPercent), "sent to office"),
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
		})
	}

	if err := s.cashRepo.SaveCashTransactions(ctx, split.Transactions); err != nil {
		s.LogError(ctx, err, "Failed to post cash split",
			slog.String("source", string(source)),
			slog.String("gross", req.Amount.String()))
		return nil, fmt.Errorf("failed to post cash split: %w", err)
	}

	s.LogInfo(ctx, "Cash split posted",
		slog.String("source", string(source)),
		slog.String("gross", req.Amount.String()),
		slog.String("keep", keep.String()),
		slog.String("send", send.String()),
		slog.Int("legs", len(split.Transactions)))
	return split, nil
}

// RecordTransaction posts one manual cash ledger entry.
func (s *cashService) RecordTransaction(ctx context.Context, req dto.RecordCashTransactionRequest, creatorUserID string) (*domain.CashTransaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}
	txnType := domain.CashTransactionType(strings.ToUpper(strings.TrimSpace(req.Type)))
	if txnType != domain.CashKeep && txnType != domain.CashSent {
		return nil, apperrors.NewValidationError("type must be KEEP or SENT")
	}
	source, err := ParseCashSource(req.Source)
	if err != nil {
		return nil, err
	}

	txn := domain.CashTransaction{
		TransactionID: s.newID(),
		Amount:        req.Amount,
		Type:          txnType,
		Source:        source,
		Description:   req.Description,
		CreatedAt:     s.now(),
		CreatedBy:     creatorUserID,
	}

	if err := s.cashRepo.SaveCashTransactions(ctx, []domain.CashTransaction{txn}); err != nil {
		s.LogError(ctx, err, "Failed to record cash transaction",
			slog.String("source", string(source)),
			slog.String("type", string(txnType)))
		return nil, fmt.Errorf("failed to record cash transaction: %w", err)
	}

	s.LogInfo(ctx, "Cash transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("source", string(source)),
		slog.String("type", string(txnType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// Rollup aggregates the ledger over the filter window. Per-source rows carry
// the source's gross received, its KEEP total minus adjustments and its SENT
// total. An adjustment is a manual SENT posting against SourceOther (cash
// taken straight out of the reception drawer), so only the OTHER row and the
// grand CashInReception are reduced by it.
func (s *cashService) Rollup(ctx context.Context, filter portssvc.RollupFilter) (*domain.CashRollup, error) {
	txns, from, to, err := s.fetchWindow(ctx, filter)
	if err != nil {
		return nil, err
	}

	rollup := &domain.CashRollup{
		From:            from,
		To:              to,
		TotalReceived:   decimal.Zero,
		CashInReception: decimal.Zero,
		TotalSent:       decimal.Zero,
		Transactions:    txns,
	}

	perSource := make(map[domain.CashSource]*domain.SourceTotals)
	sources := domain.KnownCashSources
	if filter.Source != "" {
		sources = []domain.CashSource{filter.Source}
	}
	for _, src := range sources {
		perSource[src] = &domain.SourceTotals{
			Source:          src,
			TotalReceived:   decimal.Zero,
			CashInReception: decimal.Zero,
			TotalSent:       decimal.Zero,
		}
	}

	keepGrand := decimal.Zero
	adjustments := decimal.Zero
	for _, txn := range txns {
		row, ok := perSource[txn.Source]
		if !ok {
			// A source outside the known set still aggregates rather than
			// being dropped from the grand totals.
			row = &domain.SourceTotals{
				Source:          txn.Source,
				TotalReceived:   decimal.Zero,
				CashInReception: decimal.Zero,
				TotalSent:       decimal.Zero,
			}
			perSource[txn.Source] = row
			sources = append(sources, txn.Source)
		}

		row.TotalReceived = row.TotalReceived.Add(txn.Amount)
		rollup.TotalReceived = rollup.TotalReceived.Add(txn.Amount)

		switch txn.Type {
		case domain.CashKeep:
			row.CashInReception = row.CashInReception.Add(txn.Amount)
			keepGrand = keepGrand.Add(txn.Amount)
		case domain.CashSent:
			row.TotalSent = row.TotalSent.Add(txn.Amount)
			rollup.TotalSent = rollup.TotalSent.Add(txn.Amount)
			if txn.Source == domain.SourceOther {
				row.CashInReception = row.CashInReception.Sub(txn.Amount)
				adjustments = adjustments.Add(txn.Amount)
			}
		}
	}

	rollup.CashInReception = keepGrand.Sub(adjustments)
	for _, src := range sources {
		rollup.Sources = append(rollup.Sources, *perSource[src])
	}

	s.LogDebug(ctx, "Cash rollup computed",
		slog.String("filter", string(filter.Filter)),
		slog.String("source", string(filter.Source)),
		slog.Int("transactions", len(txns)))
	return rollup, nil
}

// ListTransactions returns the filtered ledger entries, newest first.
func (s *cashService) ListTransactions(ctx context.Context, filter portssvc.RollupFilter) ([]domain.CashTransaction, error) {
	txns, _, _, err := s.fetchWindow(ctx, filter)
	return txns, err
}

// fetchWindow resolves the filter to a concrete [from, to) window, loads the
// matching ledger entries and enforces the ordering contract: descending
// createdAt, ties kept in ledger insertion order.
func (s *cashService) fetchWindow(ctx context.Context, filter portssvc.RollupFilter) ([]domain.CashTransaction, time.Time, time.Time, error) {
	from, to, err := resolveWindow(filter, s.now())
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}

	txns, err := s.cashRepo.ListCashTransactions(ctx, from, to, filter.Source)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash transactions",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, time.Time{}, time.Time{}, fmt.Errorf("failed to list cash transactions: %w", err)
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].CreatedAt.After(txns[j].CreatedAt)
	})
	return txns, from, to, nil
}

// resolveWindow maps a date filter onto a concrete half-open time window.
func resolveWindow(filter portssvc.RollupFilter, now time.Time) (time.Time, time.Time, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch filter.Filter {
	case domain.FilterToday, "":
		return startOfDay, startOfDay.AddDate(0, 0, 1), nil
	case domain.FilterWeek:
		// Weeks start on Monday.
		offset := (int(now.Weekday()) + 6) % 7
		return startOfDay.AddDate(0, 0, -offset), startOfDay.AddDate(0, 0, 1), nil
	case domain.FilterMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), startOfDay.AddDate(0, 0, 1), nil
	case domain.FilterYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), startOfDay.AddDate(0, 0, 1), nil
	case domain.FilterDate:
		if filter.Date.IsZero() {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("explicit date filter requires a date")
		}
		day := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, now.Location())
		return day, day.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, apperrors.NewValidationError(fmt.Sprintf("unknown date filter %q", filter.Filter))
	}
}

// ParseCashSource normalizes a source string against the known set.
func ParseCashSource(raw string) (domain.CashSource, error) {
	trimmed := strings.TrimSpace(raw)
	for _, src := range domain.KnownCashSources {
		if strings.EqualFold(trimmed, string(src)) {
			return src, nil
		}
	}
	return "", apperrors.NewValidationError(fmt.Sprintf("unknown cash source %q", raw))
}

// splitDescription generates the ledger description for one split leg,
// embedding the originating percentage.
func splitDescription(userNote string, pct decimal.Decimal, leg string) string {
	desc := fmt.Sprintf("Cash split: %s%% %s", pct.String(), leg)
	if userNote != "" {
		desc = userNote + " - " + desc
	}
	return desc
}
