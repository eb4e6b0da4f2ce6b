package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dpavliga/lifeledger/internal/models"
)

// CRUD endpoints for the four collection record types. Updates are
// full-record replaces by identity.

// CreateIncome adds a new income source
func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var in models.Income
	if !h.decode(w, r, &in) {
		return
	}
	created, err := h.svc.CreateIncome(r.Context(), &in)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, created)
}

// ListIncomes returns every income source
func (h *Handler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	incomes, err := h.svc.ListIncomes(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, incomes)
}

// UpdateIncome replaces an income source
func (h *Handler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	var in models.Income
	if !h.decode(w, r, &in) {
		return
	}
	updated, err := h.svc.UpdateIncome(r.Context(), mux.Vars(r)["id"], &in)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, updated)
}

// DeleteIncome removes an income source
func (h *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteIncome(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateExpense adds a new expense
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var ex models.Expense
	if !h.decode(w, r, &ex) {
		return
	}
	created, err := h.svc.CreateExpense(r.Context(), &ex)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, created)
}

// ListExpenses returns every expense
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.ListExpenses(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, expenses)
}

// UpdateExpense replaces an expense
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var ex models.Expense
	if !h.decode(w, r, &ex) {
		return
	}
	updated, err := h.svc.UpdateExpense(r.Context(), mux.Vars(r)["id"], &ex)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, updated)
}

// DeleteExpense removes an expense
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteExpense(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateBNPLPurchase adds a new pay-in-four purchase
func (h *Handler) CreateBNPLPurchase(w http.ResponseWriter, r *http.Request) {
	var p models.BNPLPurchase
	if !h.decode(w, r, &p) {
		return
	}
	created, err := h.svc.CreateBNPLPurchase(r.Context(), &p)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, created)
}

// ListBNPLPurchases returns every pay-in-four purchase
func (h *Handler) ListBNPLPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.svc.ListBNPLPurchases(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, purchases)
}

// UpdateBNPLPurchase replaces a pay-in-four purchase
func (h *Handler) UpdateBNPLPurchase(w http.ResponseWriter, r *http.Request) {
	var p models.BNPLPurchase
	if !h.decode(w, r, &p) {
		return
	}
	updated, err := h.svc.UpdateBNPLPurchase(r.Context(), mux.Vars(r)["id"], &p)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, updated)
}

// DeleteBNPLPurchase removes a pay-in-four purchase
func (h *Handler) DeleteBNPLPurchase(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteBNPLPurchase(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// InstallmentSchedule returns a purchase's remaining installment plan
func (h *Handler) InstallmentSchedule(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.InstallmentSchedule(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, plan)
}

// CreateGoal adds a new savings goal
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var g models.Goal
	if !h.decode(w, r, &g) {
		return
	}
	created, err := h.svc.CreateGoal(r.Context(), &g)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, created)
}

// ListGoals returns every savings goal
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.ListGoals(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, goals)
}

// UpdateGoal replaces a savings goal
func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var g models.Goal
	if !h.decode(w, r, &g) {
		return
	}
	updated, err := h.svc.UpdateGoal(r.Context(), mux.Vars(r)["id"], &g)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, updated)
}

// DeleteGoal removes a savings goal
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGoal(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
