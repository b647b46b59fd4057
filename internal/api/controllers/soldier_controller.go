package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"housebase/internal/models/request_models"
	"housebase/internal/services"
	"housebase/pkg/utils"
)

type SoldierController struct {
	soldierService services.SoldierServiceInterface
}

func NewSoldierController(soldierService services.SoldierServiceInterface) *SoldierController {
	return &SoldierController{
		soldierService: soldierService,
	}
}

// ListSoldiers godoc
// @Summary List soldiers
// @Tags Soldiers
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size (1-100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /soldiers [get]
func (sc *SoldierController) ListSoldiers(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	soldiers, err := sc.soldierService.ListSoldiers(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, soldiers, "Fetched soldiers successfully")
}

// SearchSoldiers godoc
// @Summary Search soldiers by name, personal number or room
// @Tags Soldiers
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /soldiers/search [get]
func (sc *SoldierController) SearchSoldiers(c *gin.Context) {
	results, err := sc.soldierService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Search completed")
}

// GetSoldier godoc
// @Summary Get one soldier
// @Tags Soldiers
// @Produce json
// @Param id path string true "Soldier id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /soldiers/{id} [get]
func (sc *SoldierController) GetSoldier(c *gin.Context) {
	soldier, err := sc.soldierService.GetSoldier(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, soldier, "Fetched soldier successfully")
}

// CreateSoldier godoc
// @Summary Register a new soldier
// @Tags Soldiers
// @Accept json
// @Produce json
// @Param request body request_models.CreateSoldierRequest true "Soldier payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /soldiers [post]
func (sc *SoldierController) CreateSoldier(c *gin.Context) {
	var req request_models.CreateSoldierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	soldier, err := sc.soldierService.CreateSoldier(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, soldier, "Soldier created successfully")
}

// UpdateSoldier godoc
// @Summary Update a soldier's details
// @Tags Soldiers
// @Accept json
// @Produce json
// @Param id path string true "Soldier id"
// @Param request body request_models.UpdateSoldierRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /soldiers/{id} [put]
func (sc *SoldierController) UpdateSoldier(c *gin.Context) {
	var req request_models.UpdateSoldierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	soldier, err := sc.soldierService.UpdateSoldier(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, soldier, "Soldier updated successfully")
}

// MarkAsLeft godoc
// @Summary Mark a soldier as having left the house
// @Tags Soldiers
// @Produce json
// @Param id path string true "Soldier id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /soldiers/{id}/mark-left [post]
func (sc *SoldierController) MarkAsLeft(c *gin.Context) {
	if err := sc.soldierService.MarkAsLeft(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Soldier marked as left")
}
