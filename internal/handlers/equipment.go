package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"equisports-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// EquipmentStore is the subset of the equipment repository the handlers need.
type EquipmentStore interface {
	Create(ctx context.Context, equipment bson.D) (*models.InsertResult, error)
	FindAll(ctx context.Context) ([]bson.M, error)
	FindByID(ctx context.Context, id bson.ObjectID) (bson.M, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, fields bson.D) (*models.UpdateResult, error)
}

type EquipmentHandler struct {
	equipmentRepo EquipmentStore
}

func NewEquipmentHandler(equipmentRepo EquipmentStore) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentRepo: equipmentRepo,
	}
}

// --- POST /equipment ---

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	equipment, err := decodeDocument(w, r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	result, err := h.equipmentRepo.Create(r.Context(), equipment)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to insert equipment", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to insert user into database"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- GET /equipment ---

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.equipmentRepo.FindAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list equipment", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch equipment"})
		return
	}

	writeJSON(w, http.StatusOK, equipment)
}

// --- GET /equipment/{id} ---

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}

	equipment, err := h.equipmentRepo.FindByID(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to find equipment", "id", id.Hex(), "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if equipment == nil {
		http.Error(w, "Equipment not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, equipment)
}

// --- PUT /equipment/{id} ---

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}

	body, err := decodeDocument(w, r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	result, err := h.equipmentRepo.UpdateByID(r.Context(), id, models.SetFields(body))
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to update equipment", "id", id.Hex(), "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Equipment not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
