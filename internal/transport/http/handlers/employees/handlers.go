package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"masterfile/internal/domain/employee"
	"masterfile/internal/transport/http/api"
	"masterfile/internal/transport/http/middleware"
)

type Handler struct {
	Store *employee.Store
}

func NewHandler(store *employee.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Route("/{empID}", func(r chi.Router) {
			r.Get("/", h.handleGetEmployee)
			r.Put("/", h.handleUpdateEmployee)
			r.Delete("/", h.handleDeleteEmployee)
		})
	})
}

// handleListEmployees returns the whole table as a bare JSON array; the
// console pages and filters client-side.
func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")

	emp, err := h.Store.GetEmployee(r.Context(), empID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}

	api.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if strings.TrimSpace(payload.EmpID) == "" {
		api.Fail(w, http.StatusBadRequest, "emp_id_required", "emp_id is required", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Store.CreateEmployee(r.Context(), payload); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			api.Fail(w, http.StatusConflict, "employee_exists", "employee id already exists", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]string{"emp_id": payload.EmpID})
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")

	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	found, err := h.Store.UpdateEmployee(r.Context(), empID, payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		return
	}
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"emp_id": empID})
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")

	found, err := h.Store.DeleteEmployee(r.Context(), empID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", middleware.GetRequestID(r.Context()))
		return
	}
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
