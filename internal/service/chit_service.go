package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ChitService owns the operator's chit group memberships, the borrower-chit
// link graph, and the per-period dues derived from them
type ChitService struct {
	tx             domain.Transactor
	borrowerRepo   domain.BorrowerRepository
	chitRepo       domain.ChitGroupRepository
	linkRepo       domain.BorrowerChitLinkRepository
	adjustmentRepo domain.AdjustmentRepository
	directRepo     domain.DirectChitPaymentRepository
	eventSink
}

// NewChitService creates a new ChitService
func NewChitService(
	tx domain.Transactor,
	borrowerRepo domain.BorrowerRepository,
	chitRepo domain.ChitGroupRepository,
	linkRepo domain.BorrowerChitLinkRepository,
	adjustmentRepo domain.AdjustmentRepository,
	directRepo domain.DirectChitPaymentRepository,
) *ChitService {
	return &ChitService{
		tx:             tx,
		borrowerRepo:   borrowerRepo,
		chitRepo:       chitRepo,
		linkRepo:       linkRepo,
		adjustmentRepo: adjustmentRepo,
		directRepo:     directRepo,
	}
}

// ChitGroupInput contains the editable fields of a chit group
type ChitGroupInput struct {
	Name               string
	MonthlyInstallment decimal.Decimal
	StartMonth         domain.Period
	Notes              *string
}

func (in ChitGroupInput) toChitGroup() *domain.ChitGroup {
	return &domain.ChitGroup{
		Name:               strings.TrimSpace(in.Name),
		MonthlyInstallment: in.MonthlyInstallment,
		StartMonth:         in.StartMonth,
		Notes:              in.Notes,
	}
}

// CreateChitGroup records a new Active membership
func (s *ChitService) CreateChitGroup(ctx context.Context, input ChitGroupInput) (created *domain.ChitGroup, err error) {
	defer observe("create_chit_group", &err)

	chit := input.toChitGroup()
	chit.Status = domain.ChitStatusActive
	if err = chit.Validate(); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err = s.chitRepo.Create(ctx, chit)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("chit_id", created.ID).
		Str("name", created.Name).
		Str("installment", created.MonthlyInstallment.String()).
		Str("start_month", created.StartMonth.String()).
		Msg("Chit group created")

	s.publishEvent(websocket.ChitGroupCreated(created))
	return created, nil
}

// UpdateChitGroup edits name, installment, start month and notes. A closed
// group keeps its closed month, which must not precede the new start month.
func (s *ChitService) UpdateChitGroup(ctx context.Context, chitID int32, input ChitGroupInput) (updated *domain.ChitGroup, err error) {
	defer observe("update_chit_group", &err)

	changes := input.toChitGroup()
	if err = changes.Validate(); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.chitRepo.GetByID(ctx, chitID)
		if err != nil {
			return err
		}
		if existing.ClosedMonth != nil && existing.ClosedMonth.Before(changes.StartMonth) {
			return domain.ErrClosedMonthBeforeStart
		}

		existing.Name = changes.Name
		existing.MonthlyInstallment = changes.MonthlyInstallment
		existing.StartMonth = changes.StartMonth
		existing.Notes = changes.Notes
		updated, err = s.chitRepo.Update(ctx, existing)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.ChitGroupUpdated(updated))
	return updated, nil
}

// CloseChitGroup closes a membership. Dues stop after closedMonth.
func (s *ChitService) CloseChitGroup(ctx context.Context, chitID int32, closedMonth domain.Period) (closed *domain.ChitGroup, err error) {
	defer observe("close_chit_group", &err)

	if !closedMonth.Valid() {
		return nil, domain.ErrClosedMonthInvalid
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		chit, err := s.chitRepo.GetByID(ctx, chitID)
		if err != nil {
			return err
		}
		if chit.IsClosed() {
			return domain.ErrChitAlreadyClosed
		}
		if closedMonth.Before(chit.StartMonth) {
			return domain.ErrClosedMonthBeforeStart
		}
		closed, err = s.chitRepo.Close(ctx, chitID, closedMonth)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("chit_id", closed.ID).
		Str("closed_month", closedMonth.String()).
		Msg("Chit group closed")

	s.publishEvent(websocket.ChitGroupClosed(closed))
	return closed, nil
}

func (s *ChitService) GetChitGroup(ctx context.Context, chitID int32) (*domain.ChitGroup, error) {
	return s.chitRepo.GetByID(ctx, chitID)
}

// ListChitGroups lists groups, optionally only those in one status
func (s *ChitService) ListChitGroups(ctx context.Context, status *domain.ChitStatus) ([]*domain.ChitGroup, error) {
	return s.chitRepo.List(ctx, status)
}

// LinkBorrowerToChit permits adjustments between a borrower and a chit group
func (s *ChitService) LinkBorrowerToChit(ctx context.Context, borrowerID, chitID int32, notes *string) (link *domain.BorrowerChitLink, err error) {
	defer observe("link_borrower", &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.borrowerRepo.GetByID(ctx, borrowerID); err != nil {
			return err
		}
		if _, err := s.chitRepo.GetByID(ctx, chitID); err != nil {
			return err
		}
		linked, err := s.linkRepo.Exists(ctx, borrowerID, chitID)
		if err != nil {
			return fmt.Errorf("check link: %w", err)
		}
		if linked {
			return domain.ErrAlreadyLinked
		}

		link = &domain.BorrowerChitLink{BorrowerID: borrowerID, ChitID: chitID, Notes: notes}
		return s.linkRepo.Create(ctx, link)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("borrower_id", borrowerID).
		Int32("chit_id", chitID).
		Msg("Borrower linked to chit")

	s.publishEvent(websocket.ChitLinkCreated(link))
	return link, nil
}

// UnlinkBorrowerFromChit removes a link. Rejected while any ACTIVE
// adjustment references the pair.
func (s *ChitService) UnlinkBorrowerFromChit(ctx context.Context, borrowerID, chitID int32) (err error) {
	defer observe("unlink_borrower", &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		linked, err := s.linkRepo.Exists(ctx, borrowerID, chitID)
		if err != nil {
			return fmt.Errorf("check link: %w", err)
		}
		if !linked {
			return domain.NotFound(domain.ErrLinkNotFound.Entity, fmt.Sprintf("%d/%d", borrowerID, chitID))
		}

		active, err := s.adjustmentRepo.CountActiveByPair(ctx, borrowerID, chitID)
		if err != nil {
			return fmt.Errorf("count active adjustments: %w", err)
		}
		if active > 0 {
			return domain.ErrLinkHasActiveAdjustments
		}
		return s.linkRepo.Delete(ctx, borrowerID, chitID)
	})
	if err != nil {
		return err
	}

	log.Info().
		Int32("borrower_id", borrowerID).
		Int32("chit_id", chitID).
		Msg("Borrower unlinked from chit")

	s.publishEvent(websocket.ChitLinkDeleted(map[string]int32{"borrowerId": borrowerID, "chitId": chitID}))
	return nil
}

// ListLinks lists links with their chit and borrower details
func (s *ChitService) ListLinks(ctx context.Context, filter domain.LinkFilter) ([]*domain.BorrowerChitLink, error) {
	return s.linkRepo.List(ctx, filter)
}

// DueForPeriod is the installment owed on a chit group for one period
func (s *ChitService) DueForPeriod(ctx context.Context, chitID int32, period domain.Period) (decimal.Decimal, error) {
	if !period.Valid() {
		return decimal.Zero, domain.ErrInvalidPeriod
	}
	chit, err := s.chitRepo.GetByID(ctx, chitID)
	if err != nil {
		return decimal.Zero, err
	}
	return chit.DueFor(period), nil
}

// ChitMonthView reports due, settled, remaining and status for one
// (borrower, chit, period) triple
func (s *ChitService) ChitMonthView(ctx context.Context, borrowerID, chitID int32, period domain.Period) (*domain.ChitMonthView, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}
	chit, err := s.chitRepo.GetByID(ctx, chitID)
	if err != nil {
		return nil, err
	}
	return chitMonthView(ctx, s.adjustmentRepo, s.directRepo, chit, borrowerID, period)
}

// SettledForPeriod sums ACTIVE adjustments and direct payments for the triple
func (s *ChitService) SettledForPeriod(ctx context.Context, borrowerID, chitID int32, period domain.Period) (decimal.Decimal, error) {
	view, err := s.ChitMonthView(ctx, borrowerID, chitID, period)
	if err != nil {
		return decimal.Zero, err
	}
	return view.Settled, nil
}

// RemainingDue is max(0, due - settled) for the triple
func (s *ChitService) RemainingDue(ctx context.Context, borrowerID, chitID int32, period domain.Period) (decimal.Decimal, error) {
	view, err := s.ChitMonthView(ctx, borrowerID, chitID, period)
	if err != nil {
		return decimal.Zero, err
	}
	return view.RemainingDue, nil
}

// PeriodStatus classifies the triple as Paid, Partial or Unpaid
func (s *ChitService) PeriodStatus(ctx context.Context, borrowerID, chitID int32, period domain.Period) (domain.ChitPeriodStatus, error) {
	view, err := s.ChitMonthView(ctx, borrowerID, chitID, period)
	if err != nil {
		return "", err
	}
	return view.Status, nil
}

// BorrowerChitSummary totals adjusted and directly paid amounts per linked chit
func (s *ChitService) BorrowerChitSummary(ctx context.Context, borrowerID int32) ([]*domain.BorrowerChitSummary, error) {
	if _, err := s.borrowerRepo.GetByID(ctx, borrowerID); err != nil {
		return nil, err
	}

	links, err := s.linkRepo.List(ctx, domain.LinkFilter{BorrowerID: &borrowerID})
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	summaries := make([]*domain.BorrowerChitSummary, 0, len(links))
	for _, link := range links {
		adjusted, err := s.adjustmentRepo.SumActiveByChit(ctx, borrowerID, link.ChitID)
		if err != nil {
			return nil, fmt.Errorf("sum adjustments: %w", err)
		}
		paid, err := s.directRepo.SumByChit(ctx, borrowerID, link.ChitID)
		if err != nil {
			return nil, fmt.Errorf("sum direct payments: %w", err)
		}
		summaries = append(summaries, &domain.BorrowerChitSummary{
			ChitID:             link.ChitID,
			ChitName:           link.ChitName,
			MonthlyInstallment: link.MonthlyInstallment,
			StartMonth:         link.StartMonth,
			ChitStatus:         link.ChitStatus,
			TotalAdjusted:      adjusted,
			TotalPaid:          paid,
			TotalContributed:   adjusted.Add(paid),
		})
	}
	return summaries, nil
}

// chitMonthView derives one chit period's standing from the adjustment and
// direct payment ledgers
func chitMonthView(
	ctx context.Context,
	adjustmentRepo domain.AdjustmentRepository,
	directRepo domain.DirectChitPaymentRepository,
	chit *domain.ChitGroup,
	borrowerID int32,
	period domain.Period,
) (*domain.ChitMonthView, error) {
	adjusted, err := adjustmentRepo.SumActiveByChitMonth(ctx, borrowerID, chit.ID, period)
	if err != nil {
		return nil, fmt.Errorf("sum adjustments: %w", err)
	}
	direct, err := directRepo.SumByChitMonth(ctx, borrowerID, chit.ID, period)
	if err != nil {
		return nil, fmt.Errorf("sum direct payments: %w", err)
	}

	due := chit.DueFor(period)
	settled := adjusted.Add(direct)
	remaining := domain.MaxMoney(decimal.Zero, due.Sub(settled))
	return &domain.ChitMonthView{
		BorrowerID:   borrowerID,
		ChitID:       chit.ID,
		ChitMonth:    period,
		Due:          due,
		Adjusted:     adjusted,
		DirectPaid:   direct,
		Settled:      settled,
		RemainingDue: remaining,
		Status:       domain.PeriodStatusOf(settled, remaining),
	}, nil
}
