package service

import (
	"github.com/dpavliga/lifeledger/internal/models"
	"github.com/dpavliga/lifeledger/internal/repository"
)

// fakeStore is an in-memory Store for service tests. Collections are keyed
// by record ID, singletons by user ID.
type fakeStore struct {
	users         map[string]*models.User
	incomes       map[string]*models.Income
	expenses      map[string]*models.Expense
	purchases     map[string]*models.BNPLPurchase
	goals         map[string]*models.Goal
	relationships map[string]*models.RelationshipData
	healths       map[string]*models.HealthProfile
	workouts      map[string]*models.Workout
	journal       map[string]*models.JournalEntry
	babyPlans     map[string]*models.BabyPlan
	immigration   map[string]*models.ImmigrationPlan
	reports       map[string]map[models.MonthKey]*models.ReportMonth
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[string]*models.User),
		incomes:       make(map[string]*models.Income),
		expenses:      make(map[string]*models.Expense),
		purchases:     make(map[string]*models.BNPLPurchase),
		goals:         make(map[string]*models.Goal),
		relationships: make(map[string]*models.RelationshipData),
		healths:       make(map[string]*models.HealthProfile),
		workouts:      make(map[string]*models.Workout),
		journal:       make(map[string]*models.JournalEntry),
		babyPlans:     make(map[string]*models.BabyPlan),
		immigration:   make(map[string]*models.ImmigrationPlan),
		reports:       make(map[string]map[models.MonthKey]*models.ReportMonth),
	}
}

func (f *fakeStore) CreateUser(u *models.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeStore) FindUserByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) FindUserByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) ListUsers() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeStore) UpdateUserCurrency(userID, currency string) error {
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Currency = currency
	return nil
}

func (f *fakeStore) CreateIncome(in *models.Income) error {
	cp := *in
	f.incomes[in.ID] = &cp
	return nil
}

func (f *fakeStore) ListIncomes(userID string) ([]models.Income, error) {
	var out []models.Income
	for _, in := range f.incomes {
		if in.UserID == userID {
			out = append(out, *in)
		}
	}
	return out, nil
}

func (f *fakeStore) FindIncome(userID, id string) (*models.Income, error) {
	in, ok := f.incomes[id]
	if !ok || in.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *in
	return &cp, nil
}

func (f *fakeStore) UpdateIncome(in *models.Income) error {
	old, ok := f.incomes[in.ID]
	if !ok || old.UserID != in.UserID {
		return repository.ErrNotFound
	}
	cp := *in
	f.incomes[in.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteIncome(userID, id string) error {
	in, ok := f.incomes[id]
	if !ok || in.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.incomes, id)
	return nil
}

func (f *fakeStore) CreateExpense(ex *models.Expense) error {
	cp := *ex
	f.expenses[ex.ID] = &cp
	return nil
}

func (f *fakeStore) ListExpenses(userID string) ([]models.Expense, error) {
	var out []models.Expense
	for _, ex := range f.expenses {
		if ex.UserID == userID {
			out = append(out, *ex)
		}
	}
	return out, nil
}

func (f *fakeStore) FindExpense(userID, id string) (*models.Expense, error) {
	ex, ok := f.expenses[id]
	if !ok || ex.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *ex
	return &cp, nil
}

func (f *fakeStore) UpdateExpense(ex *models.Expense) error {
	old, ok := f.expenses[ex.ID]
	if !ok || old.UserID != ex.UserID {
		return repository.ErrNotFound
	}
	cp := *ex
	f.expenses[ex.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteExpense(userID, id string) error {
	ex, ok := f.expenses[id]
	if !ok || ex.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.expenses, id)
	return nil
}

func (f *fakeStore) CreateBNPLPurchase(p *models.BNPLPurchase) error {
	cp := *p
	f.purchases[p.ID] = &cp
	return nil
}

func (f *fakeStore) ListBNPLPurchases(userID string) ([]models.BNPLPurchase, error) {
	var out []models.BNPLPurchase
	for _, p := range f.purchases {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) FindBNPLPurchase(userID, id string) (*models.BNPLPurchase, error) {
	p, ok := f.purchases[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) UpdateBNPLPurchase(p *models.BNPLPurchase) error {
	old, ok := f.purchases[p.ID]
	if !ok || old.UserID != p.UserID {
		return repository.ErrNotFound
	}
	cp := *p
	f.purchases[p.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteBNPLPurchase(userID, id string) error {
	p, ok := f.purchases[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.purchases, id)
	return nil
}

func (f *fakeStore) CreateGoal(g *models.Goal) error {
	cp := *g
	f.goals[g.ID] = &cp
	return nil
}

func (f *fakeStore) ListGoals(userID string) ([]models.Goal, error) {
	var out []models.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeStore) FindGoal(userID, id string) (*models.Goal, error) {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeStore) UpdateGoal(g *models.Goal) error {
	old, ok := f.goals[g.ID]
	if !ok || old.UserID != g.UserID {
		return repository.ErrNotFound
	}
	cp := *g
	f.goals[g.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteGoal(userID, id string) error {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.goals, id)
	return nil
}

func (f *fakeStore) SaveRelationship(d *models.RelationshipData) error {
	cp := *d
	f.relationships[d.UserID] = &cp
	return nil
}

func (f *fakeStore) FindRelationship(userID string) (*models.RelationshipData, error) {
	d, ok := f.relationships[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeStore) SaveHealthProfile(h *models.HealthProfile) error {
	cp := *h
	f.healths[h.UserID] = &cp
	return nil
}

func (f *fakeStore) FindHealthProfile(userID string) (*models.HealthProfile, error) {
	h, ok := f.healths[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (f *fakeStore) CreateWorkout(w *models.Workout) error {
	cp := *w
	f.workouts[w.ID] = &cp
	return nil
}

func (f *fakeStore) ListWorkouts(userID string) ([]models.Workout, error) {
	var out []models.Workout
	for _, w := range f.workouts {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateWorkout(w *models.Workout) error {
	old, ok := f.workouts[w.ID]
	if !ok || old.UserID != w.UserID {
		return repository.ErrNotFound
	}
	cp := *w
	f.workouts[w.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteWorkout(userID, id string) error {
	w, ok := f.workouts[id]
	if !ok || w.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.workouts, id)
	return nil
}

func (f *fakeStore) CreateJournalEntry(e *models.JournalEntry) error {
	cp := *e
	f.journal[e.ID] = &cp
	return nil
}

func (f *fakeStore) ListJournalEntries(userID string) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, e := range f.journal {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeStore) FindJournalEntry(userID, id string) (*models.JournalEntry, error) {
	e, ok := f.journal[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeStore) UpdateJournalEntry(e *models.JournalEntry) error {
	old, ok := f.journal[e.ID]
	if !ok || old.UserID != e.UserID {
		return repository.ErrNotFound
	}
	cp := *e
	f.journal[e.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteJournalEntry(userID, id string) error {
	e, ok := f.journal[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.journal, id)
	return nil
}

func (f *fakeStore) SaveBabyPlan(p *models.BabyPlan) error {
	cp := *p
	f.babyPlans[p.UserID] = &cp
	return nil
}

func (f *fakeStore) FindBabyPlan(userID string) (*models.BabyPlan, error) {
	p, ok := f.babyPlans[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) SaveImmigrationPlan(p *models.ImmigrationPlan) error {
	cp := *p
	f.immigration[p.UserID] = &cp
	return nil
}

func (f *fakeStore) FindImmigrationPlan(userID string) (*models.ImmigrationPlan, error) {
	p, ok := f.immigration[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) SaveReportMonth(r *models.ReportMonth) error {
	byMonth, ok := f.reports[r.UserID]
	if !ok {
		byMonth = make(map[models.MonthKey]*models.ReportMonth)
		f.reports[r.UserID] = byMonth
	}
	cp := *r
	byMonth[r.Month] = &cp
	return nil
}

func (f *fakeStore) ListReportMonths(userID string) ([]models.ReportMonth, error) {
	var out []models.ReportMonth
	for _, r := range f.reports[userID] {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeStore) FindReportMonth(userID string, month models.MonthKey) (*models.ReportMonth, error) {
	r, ok := f.reports[userID][month]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}
