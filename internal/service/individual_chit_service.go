package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/util"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// IndividualChitService manages per-borrower chits with a monthly due schedule
type IndividualChitService struct {
	tx           domain.Transactor
	borrowerRepo domain.BorrowerRepository
	chitRepo     domain.IndividualChitRepository
	eventSink
}

// NewIndividualChitService creates a new IndividualChitService
func NewIndividualChitService(tx domain.Transactor, borrowerRepo domain.BorrowerRepository, chitRepo domain.IndividualChitRepository) *IndividualChitService {
	return &IndividualChitService{
		tx:           tx,
		borrowerRepo: borrowerRepo,
		chitRepo:     chitRepo,
	}
}

// CreateIndividualChitInput contains input for a new individual chit
type CreateIndividualChitInput struct {
	BorrowerName   string
	ChitName       string
	TotalMonths    int32
	StartDate      time.Time
	MonthlyAmounts []decimal.Decimal
	PrizedMonth    *int32
	PrizeAmount    *decimal.Decimal
	Notes          *string
}

// CreateIndividualChit creates the chit and its full schedule, creating the
// borrower on first use
func (s *IndividualChitService) CreateIndividualChit(ctx context.Context, input CreateIndividualChitInput) (created *domain.IndividualChit, err error) {
	defer observe("create_individual_chit", &err)

	name, err := domain.NormalizeBorrowerName(input.BorrowerName)
	if err != nil {
		return nil, err
	}
	chit := &domain.IndividualChit{
		BorrowerName: name,
		ChitName:     strings.TrimSpace(input.ChitName),
		TotalMonths:  input.TotalMonths,
		StartDate:    util.DateOf(input.StartDate),
		PrizedMonth:  input.PrizedMonth,
		PrizeAmount:  input.PrizeAmount,
		Status:       domain.ChitStatusActive,
		Notes:        input.Notes,
	}
	if err = validateIndividualChit(chit, input.MonthlyAmounts); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		borrower, err := s.borrowerRepo.GetOrCreate(ctx, name, nil)
		if err != nil {
			return fmt.Errorf("get or create borrower: %w", err)
		}
		chit.BorrowerID = borrower.ID

		created, err = s.chitRepo.Create(ctx, chit, chit.BuildSchedule(input.MonthlyAmounts))
		return err
	})
	if err != nil {
		return nil, err
	}
	refreshSchedule(created)

	log.Info().
		Int32("chit_id", created.ID).
		Int32("borrower_id", created.BorrowerID).
		Str("chit_name", created.ChitName).
		Int32("total_months", created.TotalMonths).
		Msg("Individual chit created")

	s.publishEvent(websocket.IndividualChitCreated(created))
	return created, nil
}

// UpdateIndividualChit edits the chit header and re-prices the schedule.
// Only lines with nothing settled and a due date on or after today take the
// new amounts; settled and past lines keep theirs.
func (s *IndividualChitService) UpdateIndividualChit(ctx context.Context, chitID int32, update domain.IndividualChitUpdate, today time.Time) (updated *domain.IndividualChit, err error) {
	defer observe("update_individual_chit", &err)

	name, err := domain.NormalizeBorrowerName(update.BorrowerName)
	if err != nil {
		return nil, err
	}
	today = util.DateOf(today)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.chitRepo.GetByID(ctx, chitID)
		if err != nil {
			return err
		}

		existing.BorrowerName = name
		existing.ChitName = strings.TrimSpace(update.ChitName)
		existing.StartDate = util.DateOf(update.StartDate)
		existing.PrizedMonth = update.PrizedMonth
		existing.PrizeAmount = update.PrizeAmount
		existing.Notes = update.Notes
		if err := validateIndividualChit(existing, update.MonthlyAmounts); err != nil {
			return err
		}

		borrower, err := s.borrowerRepo.GetOrCreate(ctx, name, nil)
		if err != nil {
			return fmt.Errorf("get or create borrower: %w", err)
		}
		existing.BorrowerID = borrower.ID

		if _, err := s.chitRepo.UpdateHeader(ctx, existing); err != nil {
			return err
		}

		for _, line := range existing.Schedule {
			idx := int(line.MonthNumber) - 1
			if idx >= len(update.MonthlyAmounts) {
				continue
			}
			if line.PaidAmount().IsPositive() || line.DueDate.Before(today) {
				continue
			}
			due := domain.RoundMoney(update.MonthlyAmounts[idx])
			if due.Equal(line.DueAmount) {
				continue
			}
			if err := s.chitRepo.UpdateLineDue(ctx, line.ID, due); err != nil {
				return fmt.Errorf("update line %d: %w", line.ID, err)
			}
		}

		updated, err = s.chitRepo.GetByID(ctx, chitID)
		return err
	})
	if err != nil {
		return nil, err
	}
	refreshSchedule(updated)

	s.publishEvent(websocket.IndividualChitUpdated(updated))
	return updated, nil
}

// CloseIndividualChit closes the chit. Its lines no longer show as pending
// dues and cannot be settled further.
func (s *IndividualChitService) CloseIndividualChit(ctx context.Context, chitID int32) (closed *domain.IndividualChit, err error) {
	defer observe("close_individual_chit", &err)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		chit, err := s.chitRepo.GetByID(ctx, chitID)
		if err != nil {
			return err
		}
		if chit.IsClosed() {
			return domain.ErrIndividualChitClosed.Withf("Chit %d is already closed", chitID)
		}
		if err := s.chitRepo.Close(ctx, chitID); err != nil {
			return err
		}
		closed, err = s.chitRepo.GetByID(ctx, chitID)
		return err
	})
	if err != nil {
		return nil, err
	}
	refreshSchedule(closed)

	log.Info().Int32("chit_id", chitID).Msg("Individual chit closed")

	s.publishEvent(websocket.IndividualChitClosed(closed))
	return closed, nil
}

// GetIndividualChit returns the chit with its schedule and per-line totals
func (s *IndividualChitService) GetIndividualChit(ctx context.Context, chitID int32) (*domain.IndividualChit, error) {
	chit, err := s.chitRepo.GetByID(ctx, chitID)
	if err != nil {
		return nil, err
	}
	refreshSchedule(chit)
	return chit, nil
}

// ListIndividualChits lists chits, newest first, without their schedules
func (s *IndividualChitService) ListIndividualChits(ctx context.Context, status *domain.ChitStatus) ([]*domain.IndividualChit, error) {
	return s.chitRepo.List(ctx, status)
}

// PayScheduleLineInput contains input for a cash payment toward a line
type PayScheduleLineInput struct {
	LineID      int32
	Amount      decimal.Decimal
	PaidDate    time.Time
	PaymentMode *string
	Notes       *string
}

// PayScheduleLine records cash against a schedule line. The amount may not
// exceed what is left on the line.
func (s *IndividualChitService) PayScheduleLine(ctx context.Context, input PayScheduleLineInput) (line *domain.ScheduleLineDetail, err error) {
	defer observe("pay_schedule_line", &err)

	if !input.Amount.IsPositive() {
		return nil, domain.ErrAmountNotPositive
	}
	if input.PaidDate.IsZero() {
		return nil, domain.ErrPaymentDateMissing
	}

	var payment *domain.ScheduleCashPayment
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.chitRepo.GetLine(ctx, input.LineID)
		if err != nil {
			return err
		}
		if current.ChitStatus == domain.ChitStatusClosed {
			return domain.ErrIndividualChitClosed
		}
		remaining := current.Remaining()
		if !remaining.IsPositive() {
			return domain.ErrScheduleLineSettled
		}
		if input.Amount.Sub(remaining).GreaterThan(domain.MoneyEpsilon) {
			return domain.ErrScheduleAmountTooLarge.Withf("Amount exceeds remaining due. Remaining: %s, Requested: %s",
				domain.FormatMoney(remaining), domain.FormatMoney(input.Amount))
		}

		payment, err = s.chitRepo.AddCashPayment(ctx, &domain.ScheduleCashPayment{
			LineID:      input.LineID,
			Amount:      input.Amount,
			PaidDate:    util.DateOf(input.PaidDate),
			PaymentMode: input.PaymentMode,
			Notes:       input.Notes,
		})
		if err != nil {
			return fmt.Errorf("add cash payment: %w", err)
		}

		line, err = s.chitRepo.GetLine(ctx, input.LineID)
		return err
	})
	if err != nil {
		return nil, err
	}
	line.Refresh()

	log.Info().
		Int32("line_id", line.ID).
		Int32("payment_id", payment.ID).
		Str("amount", payment.Amount.String()).
		Str("status", string(line.PaymentStatus)).
		Msg("Schedule line paid")

	s.publishEvent(websocket.ScheduleLinePaid(line))
	return line, nil
}

// PendingScheduleDues lists unsettled lines of Active chits due on or
// before asOf, oldest due date first
func (s *IndividualChitService) PendingScheduleDues(ctx context.Context, asOf time.Time) ([]*domain.ScheduleLineDetail, error) {
	active := domain.ChitStatusActive
	cutoff := util.DateOf(asOf)
	lines, err := s.chitRepo.ListLines(ctx, domain.ScheduleLineFilter{ChitStatus: &active, DueOnOrBefore: &cutoff})
	if err != nil {
		return nil, fmt.Errorf("list schedule lines: %w", err)
	}

	dues := make([]*domain.ScheduleLineDetail, 0, len(lines))
	for _, line := range lines {
		if !line.Remaining().IsPositive() {
			continue
		}
		line.Refresh()
		dues = append(dues, line)
	}
	sort.SliceStable(dues, func(i, j int) bool {
		return dues[i].DueDate.Before(dues[j].DueDate)
	})
	return dues, nil
}

// OutOfPocketPayments lists lines settled at least partly in cash rather than
// from interest, most recently paid first
func (s *IndividualChitService) OutOfPocketPayments(ctx context.Context) ([]*domain.OutOfPocketPayment, error) {
	lines, err := s.chitRepo.ListLines(ctx, domain.ScheduleLineFilter{})
	if err != nil {
		return nil, fmt.Errorf("list schedule lines: %w", err)
	}

	payments := make([]*domain.OutOfPocketPayment, 0)
	for _, line := range lines {
		if !line.CashPaid.IsPositive() {
			continue
		}
		line.Refresh()
		payments = append(payments, &domain.OutOfPocketPayment{
			ScheduleLineDetail: *line,
			OutOfPocketAmount:  line.CashPaid,
		})
	}
	sort.SliceStable(payments, func(i, j int) bool {
		a, b := payments[i].LastPaidDate, payments[j].LastPaidDate
		switch {
		case a != nil && b != nil && !a.Equal(*b):
			return a.After(*b)
		case (a == nil) != (b == nil):
			return a != nil
		}
		return payments[i].BorrowerName < payments[j].BorrowerName
	})
	return payments, nil
}

func validateIndividualChit(chit *domain.IndividualChit, amounts []decimal.Decimal) error {
	if err := chit.Validate(); err != nil {
		return err
	}
	for _, amount := range amounts {
		if amount.IsNegative() {
			return domain.ErrChitAmountNegative
		}
	}
	if chit.PrizeAmount != nil && chit.PrizeAmount.IsNegative() {
		return domain.ErrChitAmountNegative.Withf("Prize amount cannot be negative")
	}
	return nil
}

func refreshSchedule(chit *domain.IndividualChit) {
	for _, line := range chit.Schedule {
		line.Refresh()
	}
}
