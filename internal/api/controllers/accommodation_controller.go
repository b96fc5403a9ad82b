package controllers

import (
	"github.com/gin-gonic/gin"

	"confreg/internal/services"
	"confreg/pkg/utils"
)

type AccommodationController struct {
	accommodationService services.AccommodationServiceInterface
}

func NewAccommodationController(accommodationService services.AccommodationServiceInterface) *AccommodationController {
	return &AccommodationController{
		accommodationService: accommodationService,
	}
}

// List godoc
// @Summary List accommodation options
// @Description Options with free beds; speakers also see the speaker venue
// @Tags Accommodation
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /accommodation [get]
func (ac *AccommodationController) List(c *gin.Context) {
	options, err := ac.accommodationService.ListAvailable(c.Request.Context(), c.GetString("person_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, options, "Accommodation fetched successfully")
}
