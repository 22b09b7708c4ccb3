package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const individualChitSelect = `
	SELECT c.id, c.borrower_id, b.name, c.chit_name, c.total_months, c.start_date,
	       c.prized_month, c.prize_amount, c.status, c.notes, c.created_at
	FROM chits c
	JOIN borrowers b ON b.id = c.borrower_id`

// scheduleLineSelect returns each line with the sums of its cash and
// interest ledgers and the date and mode of the latest entry
const scheduleLineSelect = `
	SELECT s.id, s.chit_id, s.month_number, s.due_date, s.due_amount,
	       COALESCE(p.cash, 0), COALESCE(a.adjusted, 0),
	       GREATEST(p.last_paid, a.last_adjusted),
	       CASE WHEN a.last_adjusted IS NOT NULL AND (p.last_paid IS NULL OR a.last_adjusted > p.last_paid)
	            THEN 'Adjustment' ELSE m.payment_mode END,
	       c.borrower_id, b.name, c.chit_name, c.status
	FROM chit_schedule s
	JOIN chits c ON c.id = s.chit_id
	JOIN borrowers b ON b.id = c.borrower_id
	LEFT JOIN LATERAL (
	    SELECT SUM(amount) AS cash, MAX(paid_date) AS last_paid
	    FROM chit_schedule_payments WHERE schedule_id = s.id
	) p ON TRUE
	LEFT JOIN LATERAL (
	    SELECT SUM(amount) AS adjusted, MAX(adjustment_date) AS last_adjusted
	    FROM chit_schedule_adjustments WHERE schedule_id = s.id
	) a ON TRUE
	LEFT JOIN LATERAL (
	    SELECT payment_mode FROM chit_schedule_payments
	    WHERE schedule_id = s.id ORDER BY paid_date DESC, id DESC LIMIT 1
	) m ON TRUE`

// IndividualChitRepository implements domain.IndividualChitRepository using PostgreSQL
type IndividualChitRepository struct {
	pool *pgxpool.Pool
}

// NewIndividualChitRepository creates a new IndividualChitRepository
func NewIndividualChitRepository(pool *pgxpool.Pool) *IndividualChitRepository {
	return &IndividualChitRepository{pool: pool}
}

// Create stores the chit and all of its schedule lines
func (r *IndividualChitRepository) Create(ctx context.Context, chit *domain.IndividualChit, lines []*domain.ScheduleLine) (*domain.IndividualChit, error) {
	db := conn(ctx, r.pool)
	var id int32
	err := db.QueryRow(ctx, `
		INSERT INTO chits (borrower_id, chit_name, total_months, start_date, prized_month, prize_amount, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		chit.BorrowerID,
		chit.ChitName,
		chit.TotalMonths,
		timeToPgDate(chit.StartDate),
		optionalInt4(chit.PrizedMonth),
		optionalNumeric(chit.PrizeAmount),
		string(domain.ChitStatusActive),
		optionalText(chit.Notes),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert chit: %w", err)
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(`INSERT INTO chit_schedule (chit_id, month_number, due_date, due_amount) VALUES ($1, $2, $3, $4)`,
			id, line.MonthNumber, timeToPgDate(line.DueDate), decimalToPgNumeric(line.DueAmount))
	}
	results := db.SendBatch(ctx, batch)
	for range lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return nil, fmt.Errorf("insert schedule line: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID returns the chit with its schedule ordered by month number
func (r *IndividualChitRepository) GetByID(ctx context.Context, id int32) (*domain.IndividualChit, error) {
	db := conn(ctx, r.pool)
	chit, err := scanIndividualChit(db.QueryRow(ctx, individualChitSelect+` WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound(domain.ErrIndividualChitNotFound.Entity, id)
	}
	if err != nil {
		return nil, err
	}

	lines, err := r.queryLines(ctx, scheduleLineSelect+` WHERE s.chit_id = $1 ORDER BY s.month_number`, id)
	if err != nil {
		return nil, err
	}
	chit.Schedule = make([]*domain.ScheduleLine, 0, len(lines))
	for _, line := range lines {
		l := line.ScheduleLine
		chit.Schedule = append(chit.Schedule, &l)
	}
	return chit, nil
}

// List returns chits, newest first, without their schedules
func (r *IndividualChitRepository) List(ctx context.Context, status *domain.ChitStatus) ([]*domain.IndividualChit, error) {
	var cond conditions
	if status != nil {
		cond.add("c.status = ?", string(*status))
	}
	rows, err := conn(ctx, r.pool).Query(ctx, individualChitSelect+cond.where()+` ORDER BY c.created_at DESC, c.id DESC`, cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list chits: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.IndividualChit, 0)
	for rows.Next() {
		chit, err := scanIndividualChit(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, chit)
	}
	return result, rows.Err()
}

// UpdateHeader replaces the editable chit fields
func (r *IndividualChitRepository) UpdateHeader(ctx context.Context, chit *domain.IndividualChit) (*domain.IndividualChit, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE chits
		SET borrower_id = $2, chit_name = $3, start_date = $4, prized_month = $5, prize_amount = $6, notes = $7
		WHERE id = $1`,
		chit.ID,
		chit.BorrowerID,
		chit.ChitName,
		timeToPgDate(chit.StartDate),
		optionalInt4(chit.PrizedMonth),
		optionalNumeric(chit.PrizeAmount),
		optionalText(chit.Notes),
	)
	if err != nil {
		return nil, fmt.Errorf("update chit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NotFound(domain.ErrIndividualChitNotFound.Entity, chit.ID)
	}
	return r.GetByID(ctx, chit.ID)
}

// UpdateLineDue re-prices one schedule line
func (r *IndividualChitRepository) UpdateLineDue(ctx context.Context, lineID int32, dueAmount decimal.Decimal) error {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE chit_schedule SET due_amount = $2 WHERE id = $1`, lineID, decimalToPgNumeric(dueAmount))
	if err != nil {
		return fmt.Errorf("update schedule line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(domain.ErrScheduleLineNotFound.Entity, lineID)
	}
	return nil
}

// Close marks the chit Closed
func (r *IndividualChitRepository) Close(ctx context.Context, id int32) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE chits SET status = $2 WHERE id = $1`, id, string(domain.ChitStatusClosed))
	if err != nil {
		return fmt.Errorf("close chit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(domain.ErrIndividualChitNotFound.Entity, id)
	}
	return nil
}

// GetLine returns one line joined with its chit
func (r *IndividualChitRepository) GetLine(ctx context.Context, lineID int32) (*domain.ScheduleLineDetail, error) {
	lines, err := r.queryLines(ctx, scheduleLineSelect+` WHERE s.id = $1`, lineID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.NotFound(domain.ErrScheduleLineNotFound.Entity, lineID)
	}
	return lines[0], nil
}

// ListLines returns lines across chits matching the filter, ordered by due date
func (r *IndividualChitRepository) ListLines(ctx context.Context, filter domain.ScheduleLineFilter) ([]*domain.ScheduleLineDetail, error) {
	var cond conditions
	if filter.ChitStatus != nil {
		cond.add("c.status = ?", string(*filter.ChitStatus))
	}
	if filter.DueOnOrBefore != nil {
		cond.add("s.due_date <= ?", timeToPgDate(*filter.DueOnOrBefore))
	}
	return r.queryLines(ctx, scheduleLineSelect+cond.where()+` ORDER BY s.due_date, s.id`, cond.args...)
}

// AddCashPayment appends a cash payment to a line
func (r *IndividualChitRepository) AddCashPayment(ctx context.Context, payment *domain.ScheduleCashPayment) (*domain.ScheduleCashPayment, error) {
	var createdAt pgtype.Timestamptz
	err := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO chit_schedule_payments (schedule_id, amount, paid_date, payment_mode, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		payment.LineID,
		decimalToPgNumeric(payment.Amount),
		timeToPgDate(payment.PaidDate),
		optionalText(payment.PaymentMode),
		optionalText(payment.Notes),
	).Scan(&payment.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("insert schedule payment: %w", err)
	}
	payment.CreatedAt = createdAt.Time
	return payment, nil
}

// AddAdjustment appends an interest adjustment to a line
func (r *IndividualChitRepository) AddAdjustment(ctx context.Context, adj *domain.ScheduleAdjustment) (*domain.ScheduleAdjustment, error) {
	var createdAt pgtype.Timestamptz
	err := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO chit_schedule_adjustments (schedule_id, loan_id, interest_month, amount, adjustment_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		adj.LineID,
		adj.LoanID,
		adj.InterestMonth.String(),
		decimalToPgNumeric(adj.Amount),
		timeToPgDate(adj.AdjustmentDate),
		optionalText(adj.Notes),
	).Scan(&adj.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("insert schedule adjustment: %w", err)
	}
	adj.CreatedAt = createdAt.Time
	return adj, nil
}

func (r *IndividualChitRepository) queryLines(ctx context.Context, query string, args ...any) ([]*domain.ScheduleLineDetail, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedule lines: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.ScheduleLineDetail, 0)
	for rows.Next() {
		var (
			d                   domain.ScheduleLineDetail
			dueDate, lastPaid   pgtype.Date
			due, cash, adjusted pgtype.Numeric
			mode                pgtype.Text
			status              string
		)
		err := rows.Scan(&d.ID, &d.ChitID, &d.MonthNumber, &dueDate, &due, &cash, &adjusted,
			&lastPaid, &mode, &d.BorrowerID, &d.BorrowerName, &d.ChitName, &status)
		if err != nil {
			return nil, err
		}
		d.DueDate = pgDateToTime(dueDate)
		d.DueAmount = pgNumericToDecimal(due)
		d.CashPaid = pgNumericToDecimal(cash)
		d.AdjustedPaid = pgNumericToDecimal(adjusted)
		d.LastPaidDate = pgDatePtr(lastPaid)
		d.PaymentMode = pgTextPtr(mode)
		d.ChitStatus = domain.ChitStatus(status)
		result = append(result, &d)
	}
	return result, rows.Err()
}

func scanIndividualChit(row pgx.Row) (*domain.IndividualChit, error) {
	var (
		chit        domain.IndividualChit
		startDate   pgtype.Date
		prizedMonth pgtype.Int4
		prize       pgtype.Numeric
		status      string
		notes       pgtype.Text
		createdAt   pgtype.Timestamptz
	)
	err := row.Scan(&chit.ID, &chit.BorrowerID, &chit.BorrowerName, &chit.ChitName, &chit.TotalMonths,
		&startDate, &prizedMonth, &prize, &status, &notes, &createdAt)
	if err != nil {
		return nil, err
	}
	chit.StartDate = pgDateToTime(startDate)
	chit.PrizedMonth = pgInt4Ptr(prizedMonth)
	chit.PrizeAmount = pgNumericPtr(prize)
	chit.Status = domain.ChitStatus(status)
	chit.Notes = pgTextPtr(notes)
	chit.CreatedAt = createdAt.Time
	return &chit, nil
}
