package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/models/dtos/requests"
)

// ListTerritoriesHandler handles GET /api/territories
func ListTerritoriesHandler(svc TerritoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		territories, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "fetch territories")
			return
		}
		common.RespondJSON(w, http.StatusOK, territories)
	}
}

// GetTerritoryHandler handles GET /api/territories/{id}
func GetTerritoryHandler(svc TerritoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		territory, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err, "fetch territory")
			return
		}
		common.RespondJSON(w, http.StatusOK, territory)
	}
}

// CreateTerritoryHandler handles POST /api/territories
func CreateTerritoryHandler(svc TerritoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateTerritoryReq
		if !decodeBody(w, r, &req) {
			return
		}
		territory, err := svc.Create(r.Context(), &req)
		if err != nil {
			respondServiceError(w, r, err, "create territory")
			return
		}
		common.RespondJSON(w, http.StatusCreated, territory)
	}
}

// UpdateTerritoryHandler handles PUT /api/territories/{id}
func UpdateTerritoryHandler(svc TerritoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateTerritoryReq
		if !decodeBody(w, r, &req) {
			return
		}
		territory, err := svc.Update(r.Context(), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err, "update territory")
			return
		}
		common.RespondJSON(w, http.StatusOK, territory)
	}
}

// DeleteTerritoryHandler handles DELETE /api/territories/{id}. Territories
// are deactivated, not removed.
func DeleteTerritoryHandler(svc TerritoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err, "delete territory")
			return
		}
		common.RespondNoContent(w)
	}
}

// ListBlocksHandler handles GET /api/territories/{id}/blocks
func ListBlocksHandler(svc TerritoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blocks, err := svc.ListBlocks(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err, "fetch blocks")
			return
		}
		common.RespondJSON(w, http.StatusOK, blocks)
	}
}

func CreateBlockHandler(svc TerritoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateBlockReq
		if !decodeBody(w, r, &req) {
			return
		}
		block, err := svc.CreateBlock(r.Context(), &req)
		if err != nil {
			respondServiceError(w, r, err, "create block")
			return
		}
		common.RespondJSON(w, http.StatusCreated, block)
	}
}

func UpdateBlockHandler(svc TerritoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateBlockReq
		if !decodeBody(w, r, &req) {
			return
		}
		block, err := svc.UpdateBlock(r.Context(), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err, "update block")
			return
		}
		common.RespondJSON(w, http.StatusOK, block)
	}
}

func DeleteBlockHandler(svc TerritoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteBlock(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err, "delete block")
			return
		}
		common.RespondNoContent(w)
	}
}
