package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/todolist/todolist-go/internal/middleware"
	"github.com/todolist/todolist-go/internal/model"
	"github.com/todolist/todolist-go/internal/service"
)

// TodoHandler handles HTTP requests for to-do item operations. Every route
// sits behind the auth middleware; the owner is always taken from the
// verified identity in the request context.
type TodoHandler struct {
	service *service.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{service: svc}
}

// HandleList handles GET /todos requests.
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, detailResponse("token not provided"))
		return
	}

	todos, err := h.service.List(r.Context(), owner)
	if err != nil {
		slog.Error("listing todos failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		return
	}

	if todos == nil {
		todos = []model.Todo{}
	}

	writeJSON(w, http.StatusOK, todos)
}

// HandleCreate handles POST /todos requests.
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, detailResponse("token not provided"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, detailResponse("invalid request body"))
		return
	}

	todo, err := h.service.Create(r.Context(), owner, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrDateRequired):
			writeJSON(w, http.StatusBadRequest, detailResponse(err.Error()))
		default:
			slog.Error("creating todo failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, todo)
}

// HandleUpdate handles PUT /todos/{id} requests.
func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, detailResponse("token not provided"))
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" || len(id) > 36 {
		writeJSON(w, http.StatusBadRequest, detailResponse("invalid todo id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, detailResponse("invalid request body"))
		return
	}

	todo, err := h.service.Update(r.Context(), owner, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrDateRequired):
			writeJSON(w, http.StatusBadRequest, detailResponse(err.Error()))
		case errors.Is(err, service.ErrTodoNotFound):
			writeJSON(w, http.StatusNotFound, detailResponse(err.Error()))
		default:
			slog.Error("updating todo failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

// HandleDelete handles DELETE /todos/{id} requests.
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, detailResponse("token not provided"))
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" || len(id) > 36 {
		writeJSON(w, http.StatusBadRequest, detailResponse("invalid todo id"))
		return
	}

	err := h.service.Delete(r.Context(), owner, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTodoNotFound):
			writeJSON(w, http.StatusNotFound, detailResponse(err.Error()))
		default:
			slog.Error("deleting todo failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
