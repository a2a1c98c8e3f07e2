package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"equisports-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserStore is the subset of the users repository the handlers need.
type UserStore interface {
	Create(ctx context.Context, user bson.D) (*models.InsertResult, error)
	FindAll(ctx context.Context) ([]bson.M, error)
	UpdateLastSignIn(ctx context.Context, email, lastSignInTime any) (*models.UpdateResult, error)
}

type UserHandler struct {
	userRepo UserStore
}

func NewUserHandler(userRepo UserStore) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// --- POST /users ---

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := decodeDocument(w, r)
	if err != nil {
		writeBodyError(w, err)
		return
	}
	slog.DebugContext(r.Context(), "received new user", "fields", len(user))

	result, err := h.userRepo.Create(r.Context(), user)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to insert user", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to insert user into database"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- GET /users ---

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.FindAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list users", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch users"})
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// --- PATCH /users ---

func (h *UserHandler) UpdateLastSignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignIn
	if err := decodeInto(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	result, err := h.userRepo.UpdateLastSignIn(r.Context(), req.Email, req.LastSignInTime)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to update last sign-in time", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}
