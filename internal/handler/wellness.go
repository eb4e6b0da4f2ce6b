package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dpavliga/lifeledger/internal/models"
)

// Endpoints for the wellness tabs: relationship check-in, health profile,
// workouts, journal, baby plan and immigration savings. The singleton records
// are GET/PUT pairs.

// Relationship returns the stored relationship check-in
func (h *Handler) Relationship(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Relationship(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, d)
}

// SaveRelationship replaces the relationship check-in
func (h *Handler) SaveRelationship(w http.ResponseWriter, r *http.Request) {
	var d models.RelationshipData
	if !h.decode(w, r, &d) {
		return
	}
	saved, err := h.svc.SaveRelationship(r.Context(), &d)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, saved)
}

// RelationshipScore scores the stored relationship check-in
func (h *Handler) RelationshipScore(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.RelationshipAssessment(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, a)
}

// HealthProfile returns the stored body-metrics record
func (h *Handler) HealthProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.HealthProfile(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

// SaveHealthProfile replaces the body-metrics record
func (h *Handler) SaveHealthProfile(w http.ResponseWriter, r *http.Request) {
	var p models.HealthProfile
	if !h.decode(w, r, &p) {
		return
	}
	saved, err := h.svc.SaveHealthProfile(r.Context(), &p)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, saved)
}

// BMICheck computes the BMI from the stored body metrics
func (h *Handler) BMICheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.BMI(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, result)
}

// CreateWorkout adds a workout session
func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	var wo models.Workout
	if !h.decode(w, r, &wo) {
		return
	}
	created, err := h.svc.CreateWorkout(r.Context(), &wo)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, created)
}

// ListWorkouts returns every workout session
func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.svc.ListWorkouts(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, workouts)
}

// UpdateWorkout replaces a workout session
func (h *Handler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	var wo models.Workout
	if !h.decode(w, r, &wo) {
		return
	}
	updated, err := h.svc.UpdateWorkout(r.Context(), mux.Vars(r)["id"], &wo)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, updated)
}

// DeleteWorkout removes a workout session
func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteWorkout(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateJournalEntry adds a journal entry
func (h *Handler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var e models.JournalEntry
	if !h.decode(w, r, &e) {
		return
	}
	created, err := h.svc.CreateJournalEntry(r.Context(), &e)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusCreated, created)
}

// ListJournalEntries returns every journal entry
func (h *Handler) ListJournalEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListJournalEntries(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, entries)
}

// UpdateJournalEntry replaces a journal entry
func (h *Handler) UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var e models.JournalEntry
	if !h.decode(w, r, &e) {
		return
	}
	updated, err := h.svc.UpdateJournalEntry(r.Context(), mux.Vars(r)["id"], &e)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, updated)
}

// DeleteJournalEntry removes a journal entry
func (h *Handler) DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteJournalEntry(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BabyPlan returns the stored baby-planning record
func (h *Handler) BabyPlan(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.BabyPlan(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

// SaveBabyPlan replaces the baby-planning record
func (h *Handler) SaveBabyPlan(w http.ResponseWriter, r *http.Request) {
	var p models.BabyPlan
	if !h.decode(w, r, &p) {
		return
	}
	saved, err := h.svc.SaveBabyPlan(r.Context(), &p)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, saved)
}

// BabyProjection estimates when the baby fund reaches its target
func (h *Handler) BabyProjection(w http.ResponseWriter, r *http.Request) {
	proj, err := h.svc.BabyProjection(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, proj)
}

// ImmigrationPlan returns the stored visa-savings record
func (h *Handler) ImmigrationPlan(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.ImmigrationPlan(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

// SaveImmigrationPlan replaces the visa-savings record
func (h *Handler) SaveImmigrationPlan(w http.ResponseWriter, r *http.Request) {
	var p models.ImmigrationPlan
	if !h.decode(w, r, &p) {
		return
	}
	saved, err := h.svc.SaveImmigrationPlan(r.Context(), &p)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, saved)
}

// ImmigrationProjection estimates when the visa fund reaches its target
func (h *Handler) ImmigrationProjection(w http.ResponseWriter, r *http.Request) {
	proj, err := h.svc.ImmigrationProjection(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, http.StatusOK, proj)
}
