package ynab

// Service provides in-memory lookup over a fetched budget. Transactions are
// hydrated on construction: account/payee/category names are resolved from
// their id fields and subtransactions are attached to their parents.
type Service struct {
	budget *BudgetDetail

	accountsByID       map[string]Account
	payeesByID         map[string]Payee
	categoriesByID     map[string]Category
	categoryGroupsByID map[string]CategoryGroup
	transactionsByID   map[string]TransactionDetail
	transactions       []TransactionDetail
}

// NewService indexes a budget for lookup.
func NewService(budget *BudgetDetail) *Service {
	s := &Service{
		budget:             budget,
		accountsByID:       make(map[string]Account, len(budget.Accounts)),
		payeesByID:         make(map[string]Payee, len(budget.Payees)),
		categoriesByID:     make(map[string]Category, len(budget.Categories)),
		categoryGroupsByID: make(map[string]CategoryGroup, len(budget.CategoryGroups)),
		transactionsByID:   make(map[string]TransactionDetail, len(budget.Transactions)),
	}
	for _, a := range budget.Accounts {
		s.accountsByID[a.ID] = a
	}
	for _, p := range budget.Payees {
		s.payeesByID[p.ID] = p
	}
	for _, c := range budget.Categories {
		s.categoriesByID[c.ID] = c
	}
	for _, g := range budget.CategoryGroups {
		s.categoryGroupsByID[g.ID] = g
	}

	subsByTransaction := make(map[string][]SubTransaction)
	for _, sub := range budget.Subtransactions {
		subsByTransaction[sub.TransactionID] = append(subsByTransaction[sub.TransactionID], sub)
	}

	s.transactions = make([]TransactionDetail, 0, len(budget.Transactions))
	for _, t := range budget.Transactions {
		if a, ok := s.accountsByID[t.AccountID]; ok {
			t.AccountName = a.Name
		}
		if p, ok := s.payeesByID[t.PayeeID]; ok {
			t.PayeeName = p.Name
		}
		if c, ok := s.categoriesByID[t.CategoryID]; ok {
			t.CategoryName = c.Name
		}
		if subs, ok := subsByTransaction[t.ID]; ok {
			t.Subtransactions = subs
		}
		s.transactions = append(s.transactions, t)
		s.transactionsByID[t.ID] = t
	}

	return s
}

// Transactions returns all hydrated transactions.
func (s *Service) Transactions() []TransactionDetail {
	return s.transactions
}

// Months returns all budget months.
func (s *Service) Months() []MonthDetail {
	return s.budget.Months
}

// Transaction returns a transaction by id.
func (s *Service) Transaction(id string) (TransactionDetail, bool) {
	t, ok := s.transactionsByID[id]
	return t, ok
}

// Account returns an account by id.
func (s *Service) Account(id string) (Account, bool) {
	a, ok := s.accountsByID[id]
	return a, ok
}

// Category returns a category by id.
func (s *Service) Category(id string) (Category, bool) {
	c, ok := s.categoriesByID[id]
	return c, ok
}

// CategoryGroup returns a category group by id.
func (s *Service) CategoryGroup(id string) (CategoryGroup, bool) {
	g, ok := s.categoryGroupsByID[id]
	return g, ok
}

// GoalCategories returns the month's categories that carry a goal and a
// non-zero budgeted amount. These drive budget and automatic entries.
func (s *Service) GoalCategories(month MonthDetail) []Category {
	var goals []Category
	for _, c := range month.Categories {
		if c.GoalType != "" && c.Budgeted != 0 {
			goals = append(goals, c)
		}
	}
	return goals
}
