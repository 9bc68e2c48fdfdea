// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/ranking"
	"github.com/danielhkuo/idea-board/store"
)

type SubmitterHandler struct {
	store *store.Store
	tiers ranking.TierTable
}

func NewSubmitterHandler(s *store.Store, tiers ranking.TierTable) *SubmitterHandler {
	return &SubmitterHandler{store: s, tiers: tiers}
}

// Register handles POST /submitters
func (h *SubmitterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterSubmitterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.store.RegisterSubmitter(r.Context(), req.Name, models.ParseRole(req.Role))
	if err != nil {
		writeStoreError(w, err, "register submitter")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterSubmitterResponse{
		SubmitterID: id,
	})
}

// List handles GET /submitters
func (h *SubmitterHandler) List(w http.ResponseWriter, r *http.Request) {
	submitters, err := h.store.ListSubmitters(r.Context())
	if err != nil {
		writeStoreError(w, err, "list submitters")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, submitters)
}

// Get handles GET /submitters/{id}
func (h *SubmitterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "submitter_id is required")
		return
	}

	submitter, err := h.store.GetSubmitter(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "get submitter")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, submitter)
}

// Roles handles GET /roles
// Lists the accepted roles with the tier each one ranks in
func (h *SubmitterHandler) Roles(w http.ResponseWriter, r *http.Request) {
	roles := make([]models.RoleInfo, 0, len(models.AllRoles))
	for _, role := range models.AllRoles {
		tier := h.tiers.Tier(role)
		roles = append(roles, models.RoleInfo{
			Role:       role,
			Tier:       tier,
			Privileged: tier == ranking.TierPrivileged,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, roles)
}
