package testutil

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// MockTransactor runs fn directly. It does not roll anything back.
type MockTransactor struct {
	Calls int
	Err   error
}

// NewMockTransactor creates a new MockTransactor
func NewMockTransactor() *MockTransactor {
	return &MockTransactor{}
}

// WithinTx calls fn with the given context
func (m *MockTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx)
}

// MockBorrowerRepository is a mock implementation of domain.BorrowerRepository
type MockBorrowerRepository struct {
	Borrowers map[int32]*domain.Borrower
	NextID    int32
}

// NewMockBorrowerRepository creates a new MockBorrowerRepository
func NewMockBorrowerRepository() *MockBorrowerRepository {
	return &MockBorrowerRepository{
		Borrowers: make(map[int32]*domain.Borrower),
		NextID:    1,
	}
}

// GetOrCreate returns the borrower with this name, creating it when absent
func (m *MockBorrowerRepository) GetOrCreate(ctx context.Context, name string, phone *string) (*domain.Borrower, error) {
	if b, err := m.GetByName(ctx, name); err == nil {
		return b, nil
	}
	b := &domain.Borrower{ID: m.NextID, Name: name, Phone: phone, CreatedAt: time.Now()}
	m.NextID++
	m.Borrowers[b.ID] = b
	return b, nil
}

// GetByID retrieves a borrower by ID
func (m *MockBorrowerRepository) GetByID(ctx context.Context, id int32) (*domain.Borrower, error) {
	if b, ok := m.Borrowers[id]; ok {
		return b, nil
	}
	return nil, domain.NotFound(domain.ErrBorrowerNotFound.Entity, id)
}

// GetByName retrieves a borrower by exact name
func (m *MockBorrowerRepository) GetByName(ctx context.Context, name string) (*domain.Borrower, error) {
	for _, b := range m.Borrowers {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, domain.NotFound(domain.ErrBorrowerNotFound.Entity, name)
}

// List returns borrowers ordered by name
func (m *MockBorrowerRepository) List(ctx context.Context) ([]*domain.Borrower, error) {
	result := make([]*domain.Borrower, 0, len(m.Borrowers))
	for _, b := range m.Borrowers {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// AddBorrower adds a borrower to the mock repository (helper for tests)
func (m *MockBorrowerRepository) AddBorrower(b *domain.Borrower) {
	m.Borrowers[b.ID] = b
	if b.ID >= m.NextID {
		m.NextID = b.ID + 1
	}
}

// MockLoanRepository is a mock implementation of domain.LoanRepository
type MockLoanRepository struct {
	Loans  map[int32]*domain.Loan
	NextID int32
}

// NewMockLoanRepository creates a new MockLoanRepository
func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{
		Loans:  make(map[int32]*domain.Loan),
		NextID: 1,
	}
}

// Create stores a new loan
func (m *MockLoanRepository) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	loan.ID = m.NextID
	m.NextID++
	loan.CreatedAt = time.Now()
	loan.UpdatedAt = loan.CreatedAt
	m.Loans[loan.ID] = loan
	return loan, nil
}

// GetByID retrieves a loan by ID
func (m *MockLoanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	if loan, ok := m.Loans[id]; ok {
		return loan, nil
	}
	return nil, domain.NotFound(domain.ErrLoanNotFound.Entity, id)
}

// List returns loans matching the filter, newest given date first
func (m *MockLoanRepository) List(ctx context.Context, filter domain.LoanFilter) ([]*domain.Loan, error) {
	result := make([]*domain.Loan, 0)
	search := strings.ToLower(filter.Search)
	for _, loan := range m.Loans {
		if filter.Status != nil && loan.Status != *filter.Status {
			continue
		}
		if filter.BorrowerID != nil && loan.BorrowerID != *filter.BorrowerID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(loan.BorrowerName), search) {
			continue
		}
		result = append(result, loan)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].GivenDate.Equal(result[j].GivenDate) {
			return result[i].GivenDate.After(result[j].GivenDate)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

// UpdateDetails edits loan metadata
func (m *MockLoanRepository) UpdateDetails(ctx context.Context, id int32, update domain.LoanDetailsUpdate) (*domain.Loan, error) {
	loan, ok := m.Loans[id]
	if !ok {
		return nil, domain.NotFound(domain.ErrLoanNotFound.Entity, id)
	}
	if update.Phone != nil {
		loan.BorrowerPhone = update.Phone
	}
	loan.InterestDueDay = update.InterestDueDay
	loan.DocumentReceived = update.DocumentReceived
	loan.DocumentType = update.DocumentType
	loan.Notes = update.Notes
	loan.UpdatedAt = time.Now()
	return loan, nil
}

// DecrementOutstanding subtracts principal from the running balance
func (m *MockLoanRepository) DecrementOutstanding(ctx context.Context, id int32, principalPaid decimal.Decimal) (*domain.Loan, error) {
	loan, ok := m.Loans[id]
	if !ok {
		return nil, domain.NotFound(domain.ErrLoanNotFound.Entity, id)
	}
	loan.OutstandingPrincipal = loan.OutstandingPrincipal.Sub(principalPaid)
	return loan, nil
}

// Close marks the loan Closed
func (m *MockLoanRepository) Close(ctx context.Context, id int32, closedDate time.Time, reason *string) (*domain.Loan, error) {
	loan, ok := m.Loans[id]
	if !ok {
		return nil, domain.NotFound(domain.ErrLoanNotFound.Entity, id)
	}
	loan.Status = domain.LoanStatusClosed
	loan.ClosedDate = &closedDate
	loan.CloseReason = reason
	return loan, nil
}

// HasActiveByBorrower reports whether the borrower has an Active loan
func (m *MockLoanRepository) HasActiveByBorrower(ctx context.Context, borrowerID int32) (bool, error) {
	for _, loan := range m.Loans {
		if loan.BorrowerID == borrowerID && loan.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

// AddLoan adds a loan to the mock repository (helper for tests)
func (m *MockLoanRepository) AddLoan(loan *domain.Loan) {
	m.Loans[loan.ID] = loan
	if loan.ID >= m.NextID {
		m.NextID = loan.ID + 1
	}
}

// MockPaymentRepository is a mock implementation of domain.PaymentRepository.
// Loans is consulted for borrower-level sums and listing joins.
type MockPaymentRepository struct {
	Payments  []*domain.Payment
	Loans     *MockLoanRepository
	NextID    int32
	CreateErr error
}

// NewMockPaymentRepository creates a new MockPaymentRepository
func NewMockPaymentRepository(loans *MockLoanRepository) *MockPaymentRepository {
	return &MockPaymentRepository{
		Loans:  loans,
		NextID: 1,
	}
}

// Create appends a payment
func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	payment.ID = m.NextID
	m.NextID++
	payment.CreatedAt = time.Now()
	m.Payments = append(m.Payments, payment)
	return payment, nil
}

// ListByLoan returns a loan's payments, newest payment date first
func (m *MockPaymentRepository) ListByLoan(ctx context.Context, loanID int32) ([]*domain.Payment, error) {
	result := make([]*domain.Payment, 0)
	for _, p := range m.Payments {
		if p.LoanID == loanID {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PaymentDate.After(result[j].PaymentDate)
	})
	return result, nil
}

// SumInterestByBorrowerMonth totals interest paid for the period across the
// borrower's Active loans
func (m *MockPaymentRepository) SumInterestByBorrowerMonth(ctx context.Context, borrowerID int32, month domain.Period) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range m.Payments {
		if p.InterestMonth != month {
			continue
		}
		loan, ok := m.Loans.Loans[p.LoanID]
		if !ok || loan.BorrowerID != borrowerID || !loan.IsActive() {
			continue
		}
		total = total.Add(p.InterestPaid)
	}
	return total, nil
}

// ListDetailsSince lists payments with interest month on or after from
func (m *MockPaymentRepository) ListDetailsSince(ctx context.Context, from domain.Period) ([]*domain.PaymentDetail, error) {
	result := make([]*domain.PaymentDetail, 0)
	for _, p := range m.Payments {
		if p.InterestMonth.Before(from) {
			continue
		}
		detail := &domain.PaymentDetail{Payment: *p}
		if loan, ok := m.Loans.Loans[p.LoanID]; ok {
			detail.BorrowerName = loan.BorrowerName
			detail.PrincipalGiven = loan.PrincipalGiven
			detail.OutstandingPrincipal = loan.OutstandingPrincipal
			detail.MonthlyRate = loan.MonthlyRate
		}
		result = append(result, detail)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].InterestMonth != result[j].InterestMonth {
			return result[i].InterestMonth.After(result[j].InterestMonth)
		}
		return result[i].PaymentDate.After(result[j].PaymentDate)
	})
	return result, nil
}

// AddPayment adds a payment to the mock repository (helper for tests)
func (m *MockPaymentRepository) AddPayment(p *domain.Payment) {
	if p.ID == 0 {
		p.ID = m.NextID
	}
	if p.ID >= m.NextID {
		m.NextID = p.ID + 1
	}
	m.Payments = append(m.Payments, p)
}

// MockChitGroupRepository is a mock implementation of domain.ChitGroupRepository
type MockChitGroupRepository struct {
	Chits  map[int32]*domain.ChitGroup
	NextID int32
}

// NewMockChitGroupRepository creates a new MockChitGroupRepository
func NewMockChitGroupRepository() *MockChitGroupRepository {
	return &MockChitGroupRepository{
		Chits:  make(map[int32]*domain.ChitGroup),
		NextID: 1,
	}
}

// Create stores a new chit group with a unique name
func (m *MockChitGroupRepository) Create(ctx context.Context, chit *domain.ChitGroup) (*domain.ChitGroup, error) {
	for _, existing := range m.Chits {
		if existing.Name == chit.Name {
			return nil, domain.ErrChitNameTaken
		}
	}
	chit.ID = m.NextID
	m.NextID++
	chit.CreatedAt = time.Now()
	m.Chits[chit.ID] = chit
	return chit, nil
}

// GetByID retrieves a chit group by ID
func (m *MockChitGroupRepository) GetByID(ctx context.Context, id int32) (*domain.ChitGroup, error) {
	if chit, ok := m.Chits[id]; ok {
		return chit, nil
	}
	return nil, domain.NotFound(domain.ErrChitGroupNotFound.Entity, id)
}

// List returns chit groups ordered by name
func (m *MockChitGroupRepository) List(ctx context.Context, status *domain.ChitStatus) ([]*domain.ChitGroup, error) {
	result := make([]*domain.ChitGroup, 0)
	for _, chit := range m.Chits {
		if status != nil && chit.Status != *status {
			continue
		}
		result = append(result, chit)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Update replaces a stored chit group
func (m *MockChitGroupRepository) Update(ctx context.Context, chit *domain.ChitGroup) (*domain.ChitGroup, error) {
	if _, ok := m.Chits[chit.ID]; !ok {
		return nil, domain.NotFound(domain.ErrChitGroupNotFound.Entity, chit.ID)
	}
	for _, existing := range m.Chits {
		if existing.ID != chit.ID && existing.Name == chit.Name {
			return nil, domain.ErrChitNameTaken
		}
	}
	m.Chits[chit.ID] = chit
	return chit, nil
}

// Close marks the chit group Closed at closedMonth
func (m *MockChitGroupRepository) Close(ctx context.Context, id int32, closedMonth domain.Period) (*domain.ChitGroup, error) {
	chit, ok := m.Chits[id]
	if !ok {
		return nil, domain.NotFound(domain.ErrChitGroupNotFound.Entity, id)
	}
	chit.Status = domain.ChitStatusClosed
	chit.ClosedMonth = &closedMonth
	return chit, nil
}

// AddChitGroup adds a chit group to the mock repository (helper for tests)
func (m *MockChitGroupRepository) AddChitGroup(chit *domain.ChitGroup) {
	m.Chits[chit.ID] = chit
	if chit.ID >= m.NextID {
		m.NextID = chit.ID + 1
	}
}

type linkKey struct{ borrowerID, chitID int32 }

// MockBorrowerChitLinkRepository is a mock implementation of domain.BorrowerChitLinkRepository
type MockBorrowerChitLinkRepository struct {
	Links map[linkKey]*domain.BorrowerChitLink
	Chits *MockChitGroupRepository
}

// NewMockBorrowerChitLinkRepository creates a new MockBorrowerChitLinkRepository.
// chits may be nil; it is only used to fill listing joins.
func NewMockBorrowerChitLinkRepository(chits *MockChitGroupRepository) *MockBorrowerChitLinkRepository {
	return &MockBorrowerChitLinkRepository{
		Links: make(map[linkKey]*domain.BorrowerChitLink),
		Chits: chits,
	}
}

// Create stores a link
func (m *MockBorrowerChitLinkRepository) Create(ctx context.Context, link *domain.BorrowerChitLink) error {
	key := linkKey{link.BorrowerID, link.ChitID}
	if _, ok := m.Links[key]; ok {
		return domain.ErrAlreadyLinked
	}
	link.CreatedAt = time.Now()
	m.Links[key] = link
	return nil
}

// Delete removes a link
func (m *MockBorrowerChitLinkRepository) Delete(ctx context.Context, borrowerID, chitID int32) error {
	delete(m.Links, linkKey{borrowerID, chitID})
	return nil
}

// Exists reports whether the pair is linked
func (m *MockBorrowerChitLinkRepository) Exists(ctx context.Context, borrowerID, chitID int32) (bool, error) {
	_, ok := m.Links[linkKey{borrowerID, chitID}]
	return ok, nil
}

// List returns links matching the filter with chit details joined
func (m *MockBorrowerChitLinkRepository) List(ctx context.Context, filter domain.LinkFilter) ([]*domain.BorrowerChitLink, error) {
	result := make([]*domain.BorrowerChitLink, 0)
	for _, link := range m.Links {
		if filter.BorrowerID != nil && link.BorrowerID != *filter.BorrowerID {
			continue
		}
		if filter.ChitID != nil && link.ChitID != *filter.ChitID {
			continue
		}
		if m.Chits != nil {
			if chit, ok := m.Chits.Chits[link.ChitID]; ok {
				link.ChitName = chit.Name
				link.MonthlyInstallment = chit.MonthlyInstallment
				link.StartMonth = chit.StartMonth
				link.ChitStatus = chit.Status
				link.ClosedMonth = chit.ClosedMonth
			}
		}
		result = append(result, link)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ChitID != result[j].ChitID {
			return result[i].ChitID < result[j].ChitID
		}
		return result[i].BorrowerID < result[j].BorrowerID
	})
	return result, nil
}

// AddLink adds a link to the mock repository (helper for tests)
func (m *MockBorrowerChitLinkRepository) AddLink(borrowerID, chitID int32) {
	m.Links[linkKey{borrowerID, chitID}] = &domain.BorrowerChitLink{BorrowerID: borrowerID, ChitID: chitID}
}

// MockAdjustmentRepository is a mock implementation of domain.AdjustmentRepository
type MockAdjustmentRepository struct {
	Adjustments []*domain.Adjustment
	NextID      int32
}

// NewMockAdjustmentRepository creates a new MockAdjustmentRepository
func NewMockAdjustmentRepository() *MockAdjustmentRepository {
	return &MockAdjustmentRepository{NextID: 1}
}

// Create appends an adjustment
func (m *MockAdjustmentRepository) Create(ctx context.Context, adj *domain.Adjustment) (*domain.Adjustment, error) {
	adj.ID = m.NextID
	m.NextID++
	adj.CreatedAt = time.Now()
	m.Adjustments = append(m.Adjustments, adj)
	return adj, nil
}

// GetByID retrieves an adjustment by ID
func (m *MockAdjustmentRepository) GetByID(ctx context.Context, id int32) (*domain.Adjustment, error) {
	for _, adj := range m.Adjustments {
		if adj.ID == id {
			return adj, nil
		}
	}
	return nil, domain.NotFound(domain.ErrAdjustmentNotFound.Entity, id)
}

// MarkReversed flips an adjustment to REVERSED
func (m *MockAdjustmentRepository) MarkReversed(ctx context.Context, id int32) error {
	adj, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	adj.Status = domain.AdjustmentStatusReversed
	return nil
}

// List returns adjustments matching the filter, newest first
func (m *MockAdjustmentRepository) List(ctx context.Context, filter domain.AdjustmentFilter) ([]*domain.Adjustment, error) {
	result := make([]*domain.Adjustment, 0)
	for i := len(m.Adjustments) - 1; i >= 0; i-- {
		adj := m.Adjustments[i]
		if filter.BorrowerID != nil && adj.BorrowerID != *filter.BorrowerID {
			continue
		}
		if filter.ChitID != nil && adj.ChitID != *filter.ChitID {
			continue
		}
		if filter.Status != nil && adj.Status != *filter.Status {
			continue
		}
		result = append(result, adj)
	}
	return result, nil
}

func (m *MockAdjustmentRepository) sumActive(match func(*domain.Adjustment) bool) decimal.Decimal {
	total := decimal.Zero
	for _, adj := range m.Adjustments {
		if adj.IsActive() && match(adj) {
			total = total.Add(adj.Amount)
		}
	}
	return total
}

// SumActiveByInterestMonth totals ACTIVE rows drawn from a source period
func (m *MockAdjustmentRepository) SumActiveByInterestMonth(ctx context.Context, borrowerID int32, interestMonth domain.Period) (decimal.Decimal, error) {
	return m.sumActive(func(a *domain.Adjustment) bool {
		return a.BorrowerID == borrowerID && a.InterestMonth == interestMonth
	}), nil
}

// SumActiveByChitMonth totals ACTIVE rows applied to a chit period
func (m *MockAdjustmentRepository) SumActiveByChitMonth(ctx context.Context, borrowerID, chitID int32, chitMonth domain.Period) (decimal.Decimal, error) {
	return m.sumActive(func(a *domain.Adjustment) bool {
		return a.BorrowerID == borrowerID && a.ChitID == chitID && a.ChitMonth == chitMonth
	}), nil
}

// SumActiveByChit totals ACTIVE rows for a borrower-chit pair
func (m *MockAdjustmentRepository) SumActiveByChit(ctx context.Context, borrowerID, chitID int32) (decimal.Decimal, error) {
	return m.sumActive(func(a *domain.Adjustment) bool {
		return a.BorrowerID == borrowerID && a.ChitID == chitID
	}), nil
}

// CountActiveByPair counts ACTIVE rows for a borrower-chit pair
func (m *MockAdjustmentRepository) CountActiveByPair(ctx context.Context, borrowerID, chitID int32) (int64, error) {
	var count int64
	for _, adj := range m.Adjustments {
		if adj.IsActive() && adj.BorrowerID == borrowerID && adj.ChitID == chitID {
			count++
		}
	}
	return count, nil
}

// MockDirectChitPaymentRepository is a mock implementation of domain.DirectChitPaymentRepository
type MockDirectChitPaymentRepository struct {
	Payments []*domain.DirectChitPayment
	NextID   int32
}

// NewMockDirectChitPaymentRepository creates a new MockDirectChitPaymentRepository
func NewMockDirectChitPaymentRepository() *MockDirectChitPaymentRepository {
	return &MockDirectChitPaymentRepository{NextID: 1}
}

// Create appends a direct payment
func (m *MockDirectChitPaymentRepository) Create(ctx context.Context, payment *domain.DirectChitPayment) (*domain.DirectChitPayment, error) {
	payment.ID = m.NextID
	m.NextID++
	payment.CreatedAt = time.Now()
	m.Payments = append(m.Payments, payment)
	return payment, nil
}

// List returns direct payments matching the filter, newest first
func (m *MockDirectChitPaymentRepository) List(ctx context.Context, filter domain.DirectChitPaymentFilter) ([]*domain.DirectChitPayment, error) {
	result := make([]*domain.DirectChitPayment, 0)
	for i := len(m.Payments) - 1; i >= 0; i-- {
		p := m.Payments[i]
		if filter.BorrowerID != nil && p.BorrowerID != *filter.BorrowerID {
			continue
		}
		if filter.ChitID != nil && p.ChitID != *filter.ChitID {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// SumByChitMonth totals direct payments for one chit period
func (m *MockDirectChitPaymentRepository) SumByChitMonth(ctx context.Context, borrowerID, chitID int32, chitMonth domain.Period) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range m.Payments {
		if p.BorrowerID == borrowerID && p.ChitID == chitID && p.ChitMonth == chitMonth {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

// SumByChit totals direct payments for a borrower-chit pair
func (m *MockDirectChitPaymentRepository) SumByChit(ctx context.Context, borrowerID, chitID int32) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range m.Payments {
		if p.BorrowerID == borrowerID && p.ChitID == chitID {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

// MockIndividualChitRepository is a mock implementation of
// domain.IndividualChitRepository. Reads return copies with the line ledger
// sums filled in, the way the postgres repository does.
type MockIndividualChitRepository struct {
	Chits        map[int32]*domain.IndividualChit
	Lines        map[int32]*domain.ScheduleLine
	CashPayments []*domain.ScheduleCashPayment
	Adjustments  []*domain.ScheduleAdjustment
	NextChitID   int32
	NextLineID   int32
	NextEntryID  int32
}

// NewMockIndividualChitRepository creates a new MockIndividualChitRepository
func NewMockIndividualChitRepository() *MockIndividualChitRepository {
	return &MockIndividualChitRepository{
		Chits:       make(map[int32]*domain.IndividualChit),
		Lines:       make(map[int32]*domain.ScheduleLine),
		NextChitID:  1,
		NextLineID:  1,
		NextEntryID: 1,
	}
}

// Create stores the chit and its lines
func (m *MockIndividualChitRepository) Create(ctx context.Context, chit *domain.IndividualChit, lines []*domain.ScheduleLine) (*domain.IndividualChit, error) {
	stored := *chit
	stored.ID = m.NextChitID
	m.NextChitID++
	stored.CreatedAt = time.Now()
	stored.Schedule = nil
	m.Chits[stored.ID] = &stored

	for _, line := range lines {
		l := *line
		l.ID = m.NextLineID
		m.NextLineID++
		l.ChitID = stored.ID
		m.Lines[l.ID] = &l
	}
	return m.GetByID(ctx, stored.ID)
}

// GetByID returns a copy of the chit with its schedule
func (m *MockIndividualChitRepository) GetByID(ctx context.Context, id int32) (*domain.IndividualChit, error) {
	chit, ok := m.Chits[id]
	if !ok {
		return nil, domain.NotFound(domain.ErrIndividualChitNotFound.Entity, id)
	}
	result := *chit
	result.Schedule = nil
	for _, line := range m.sortedLines() {
		if line.ChitID == id {
			l := m.withSums(line)
			result.Schedule = append(result.Schedule, &l)
		}
	}
	return &result, nil
}

// List returns chits, newest first, without schedules
func (m *MockIndividualChitRepository) List(ctx context.Context, status *domain.ChitStatus) ([]*domain.IndividualChit, error) {
	result := make([]*domain.IndividualChit, 0)
	for _, chit := range m.Chits {
		if status != nil && chit.Status != *status {
			continue
		}
		c := *chit
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// UpdateHeader replaces the editable chit fields
func (m *MockIndividualChitRepository) UpdateHeader(ctx context.Context, chit *domain.IndividualChit) (*domain.IndividualChit, error) {
	stored, ok := m.Chits[chit.ID]
	if !ok {
		return nil, domain.NotFound(domain.ErrIndividualChitNotFound.Entity, chit.ID)
	}
	stored.BorrowerID = chit.BorrowerID
	stored.BorrowerName = chit.BorrowerName
	stored.ChitName = chit.ChitName
	stored.StartDate = chit.StartDate
	stored.PrizedMonth = chit.PrizedMonth
	stored.PrizeAmount = chit.PrizeAmount
	stored.Notes = chit.Notes
	return m.GetByID(ctx, chit.ID)
}

// UpdateLineDue re-prices one line
func (m *MockIndividualChitRepository) UpdateLineDue(ctx context.Context, lineID int32, dueAmount decimal.Decimal) error {
	line, ok := m.Lines[lineID]
	if !ok {
		return domain.NotFound(domain.ErrScheduleLineNotFound.Entity, lineID)
	}
	line.DueAmount = dueAmount
	return nil
}

// Close marks the chit Closed
func (m *MockIndividualChitRepository) Close(ctx context.Context, id int32) error {
	chit, ok := m.Chits[id]
	if !ok {
		return domain.NotFound(domain.ErrIndividualChitNotFound.Entity, id)
	}
	chit.Status = domain.ChitStatusClosed
	return nil
}

// GetLine returns one line joined with its chit
func (m *MockIndividualChitRepository) GetLine(ctx context.Context, lineID int32) (*domain.ScheduleLineDetail, error) {
	line, ok := m.Lines[lineID]
	if !ok {
		return nil, domain.NotFound(domain.ErrScheduleLineNotFound.Entity, lineID)
	}
	return m.detail(line), nil
}

// ListLines returns lines matching the filter, ordered by due date
func (m *MockIndividualChitRepository) ListLines(ctx context.Context, filter domain.ScheduleLineFilter) ([]*domain.ScheduleLineDetail, error) {
	result := make([]*domain.ScheduleLineDetail, 0)
	for _, line := range m.sortedLines() {
		d := m.detail(line)
		if filter.ChitStatus != nil && d.ChitStatus != *filter.ChitStatus {
			continue
		}
		if filter.DueOnOrBefore != nil && d.DueDate.After(*filter.DueOnOrBefore) {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

// AddCashPayment appends a cash payment to a line
func (m *MockIndividualChitRepository) AddCashPayment(ctx context.Context, payment *domain.ScheduleCashPayment) (*domain.ScheduleCashPayment, error) {
	if _, ok := m.Lines[payment.LineID]; !ok {
		return nil, domain.NotFound(domain.ErrScheduleLineNotFound.Entity, payment.LineID)
	}
	payment.ID = m.NextEntryID
	m.NextEntryID++
	payment.CreatedAt = time.Now()
	m.CashPayments = append(m.CashPayments, payment)
	return payment, nil
}

// AddAdjustment appends an interest adjustment to a line
func (m *MockIndividualChitRepository) AddAdjustment(ctx context.Context, adj *domain.ScheduleAdjustment) (*domain.ScheduleAdjustment, error) {
	if _, ok := m.Lines[adj.LineID]; !ok {
		return nil, domain.NotFound(domain.ErrScheduleLineNotFound.Entity, adj.LineID)
	}
	adj.ID = m.NextEntryID
	m.NextEntryID++
	adj.CreatedAt = time.Now()
	m.Adjustments = append(m.Adjustments, adj)
	return adj, nil
}

func (m *MockIndividualChitRepository) sortedLines() []*domain.ScheduleLine {
	lines := make([]*domain.ScheduleLine, 0, len(m.Lines))
	for _, line := range m.Lines {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].DueDate.Equal(lines[j].DueDate) {
			return lines[i].DueDate.Before(lines[j].DueDate)
		}
		return lines[i].ID < lines[j].ID
	})
	return lines
}

func (m *MockIndividualChitRepository) withSums(line *domain.ScheduleLine) domain.ScheduleLine {
	l := *line
	l.CashPaid = decimal.Zero
	l.AdjustedPaid = decimal.Zero
	for _, p := range m.CashPayments {
		if p.LineID != line.ID {
			continue
		}
		l.CashPaid = l.CashPaid.Add(p.Amount)
		if l.LastPaidDate == nil || p.PaidDate.After(*l.LastPaidDate) {
			paid := p.PaidDate
			l.LastPaidDate = &paid
			l.PaymentMode = p.PaymentMode
		}
	}
	for _, a := range m.Adjustments {
		if a.LineID != line.ID {
			continue
		}
		l.AdjustedPaid = l.AdjustedPaid.Add(a.Amount)
		if l.LastPaidDate == nil || a.AdjustmentDate.After(*l.LastPaidDate) {
			paid := a.AdjustmentDate
			mode := domain.PaymentModeAdjustment
			l.LastPaidDate = &paid
			l.PaymentMode = &mode
		}
	}
	return l
}

func (m *MockIndividualChitRepository) detail(line *domain.ScheduleLine) *domain.ScheduleLineDetail {
	d := &domain.ScheduleLineDetail{ScheduleLine: m.withSums(line)}
	if chit, ok := m.Chits[line.ChitID]; ok {
		d.BorrowerID = chit.BorrowerID
		d.BorrowerName = chit.BorrowerName
		d.ChitName = chit.ChitName
		d.ChitStatus = chit.Status
	}
	return d
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	Events []websocket.Event
}

// Publish records the event
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.Events = append(m.Events, event)
}
