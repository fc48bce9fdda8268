package http

import (
	"net/http"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
	"github.com/cmlabs-hris/jornada-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SedeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type sedeHandlerImpl struct {
	sedeService sede.SedeService
}

func NewSedeHandler(sedeService sede.SedeService) SedeHandler {
	return &sedeHandlerImpl{
		sedeService: sedeService,
	}
}

// List implements SedeHandler. ?active=true hides inactive sedes.
func (h *sedeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := sede.SedeFilter{ActiveOnly: r.URL.Query().Get("active") == "true"}

	results, err := h.sedeService.ListSedes(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Get implements SedeHandler.
func (h *sedeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.sedeService.GetSede(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements SedeHandler.
func (h *sedeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sede.CreateSedeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sedeService.CreateSede(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sede created successfully", result)
}

// Update implements SedeHandler.
func (h *sedeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req sede.UpdateSedeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.sedeService.UpdateSede(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sede updated successfully", result)
}

// Delete implements SedeHandler.
func (h *sedeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sedeService.DeleteSede(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sede deleted successfully", nil)
}
