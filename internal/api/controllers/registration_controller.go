package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"confreg/internal/models/request_models"
	"confreg/internal/services"
	"confreg/pkg/utils"
)

type RegistrationController struct {
	registrationService services.RegistrationServiceInterface
}

func NewRegistrationController(registrationService services.RegistrationServiceInterface) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// New godoc
// @Summary Register for the conference
// @Description Create a registration, and an account with it when not signed in
// @Tags Registrations
// @Accept json
// @Produce json
// @Param request body request_models.NewRegistrationRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /registrations [post]
func (rc *RegistrationController) New(c *gin.Context) {
	var req request_models.NewRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	registration, err := rc.registrationService.Signup(c.Request.Context(), req, c.GetString("person_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, registration, "Thanks for registering! A confirmation email is on its way.")
}

// Edit godoc
// @Summary Edit a registration
// @Description Update a registration (owner or organiser) and reprice its invoice
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration id"
// @Param request body request_models.EditRegistrationRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /registrations/{id} [put]
func (rc *RegistrationController) Edit(c *gin.Context) {
	var req request_models.EditRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	registration, err := rc.registrationService.Edit(
		c.Request.Context(), c.Param("id"), req,
		c.GetString("person_id"), c.GetString("role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, registration, "Registration updated")
}

// List godoc
// @Summary List registrations
// @Description Organiser view of every registration
// @Tags Registrations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /registrations [get]
func (rc *RegistrationController) List(c *gin.Context) {
	registrations, err := rc.registrationService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, registrations, "Registrations fetched successfully")
}

// Status godoc
// @Summary Early-bird status
// @Description Advisory early-bird availability banner, open to anyone
// @Tags Registrations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /registrations/status [get]
func (rc *RegistrationController) Status(c *gin.Context) {
	status, err := rc.registrationService.Status(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Earlybird status")
}

// Pay godoc
// @Summary Generate the invoice for a registration
// @Description Rebuilds the invoice unless payments are already recorded
// @Tags Registrations
// @Produce json
// @Param id path string true "Registration id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /registrations/{id}/pay [post]
func (rc *RegistrationController) Pay(c *gin.Context) {
	invoice, err := rc.registrationService.Pay(
		c.Request.Context(), c.Param("id"),
		c.GetString("person_id"), c.GetString("role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Invoice generated")
}

// Remind godoc
// @Summary Send payment reminders
// @Description Emails every registrant whose invoice is unpaid
// @Tags Registrations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /registrations/remind [post]
func (rc *RegistrationController) Remind(c *gin.Context) {
	sent, err := rc.registrationService.Remind(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"sent": sent}, "Reminders sent")
}
