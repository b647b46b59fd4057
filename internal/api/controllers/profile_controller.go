package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"housebase/internal/models/request_models"
	"housebase/internal/questionnaire"
	"housebase/internal/services"
	"housebase/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetSchema godoc
// @Summary Get the questionnaire schema
// @Description Returns the ordered categories and questions the editor renders
// @Tags Questionnaire
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /questionnaire/schema [get]
func (pc *ProfileController) GetSchema(c *gin.Context) {
	utils.RespondSuccess(c, pc.profileService.GetSchema(), "Fetched questionnaire schema")
}

// OpenSelfEditor godoc
// @Summary Open a questionnaire editor for the caller
// @Description Loads the caller's stored answers into a new edit session
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/editor [post]
func (pc *ProfileController) OpenSelfEditor(c *gin.Context) {
	subjectID := c.GetString("soldier_id")
	if subjectID == "" {
		utils.RespondError(c, http.StatusBadRequest, "No soldier profile linked to this account")
		return
	}

	editor, err := pc.profileService.OpenEditor(c.Request.Context(), subjectID, questionnaire.RoleSelf)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, editor, "Editor opened")
}

// OpenAdminEditor godoc
// @Summary Open a questionnaire editor for any subject
// @Description Admin-only: loads the given subject's answers; an unknown subject starts empty
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.OpenEditorRequest true "Subject to edit"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/profile/editor [post]
func (pc *ProfileController) OpenAdminEditor(c *gin.Context) {
	var req request_models.OpenEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	editor, err := pc.profileService.OpenEditor(c.Request.Context(), req.SubjectID, questionnaire.RoleAdmin)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, editor, "Editor opened")
}

// SubmitAnswers godoc
// @Summary Save answers in an open editor
// @Description Validates every submitted answer, then writes only the changed ones
// @Tags Profile
// @Accept json
// @Produce json
// @Param sessionId path string true "Edit session id"
// @Param request body request_models.SubmitAnswersRequest true "Raw answers"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/editor/{sessionId} [post]
func (pc *ProfileController) SubmitAnswers(c *gin.Context) {
	var req request_models.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	saved, err := pc.profileService.SubmitAnswers(c.Request.Context(), c.Param("sessionId"), req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Answers saved")
}

// GetSelfProgress godoc
// @Summary Get the caller's questionnaire progress
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/progress [get]
func (pc *ProfileController) GetSelfProgress(c *gin.Context) {
	subjectID := c.GetString("soldier_id")
	if subjectID == "" {
		utils.RespondError(c, http.StatusBadRequest, "No soldier profile linked to this account")
		return
	}

	progress, err := pc.profileService.GetProgress(c.Request.Context(), subjectID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progress, "Fetched progress")
}

// MarkAsLeft godoc
// @Summary Mark the edited subject as having left the house
// @Description Admin-only follow-up on an open admin editor
// @Tags Profile
// @Produce json
// @Param sessionId path string true "Edit session id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/profile/editor/{sessionId}/mark-left [post]
func (pc *ProfileController) MarkAsLeft(c *gin.Context) {
	if err := pc.profileService.MarkAsLeft(c.Request.Context(), c.Param("sessionId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Soldier marked as left")
}

// CloseEditor godoc
// @Summary Close an open editor
// @Tags Profile
// @Produce json
// @Param sessionId path string true "Edit session id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/editor/{sessionId} [delete]
func (pc *ProfileController) CloseEditor(c *gin.Context) {
	pc.profileService.CloseEditor(c.Param("sessionId"))
	utils.RespondSuccess(c, nil, "Editor closed")
}
