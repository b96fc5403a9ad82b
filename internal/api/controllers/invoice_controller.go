package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"confreg/internal/models/request_models"
	"confreg/internal/services"
	"confreg/pkg/utils"
)

type InvoiceController struct {
	invoiceService services.InvoiceServiceInterface
}

func NewInvoiceController(invoiceService services.InvoiceServiceInterface) *InvoiceController {
	return &InvoiceController{
		invoiceService: invoiceService,
	}
}

// View godoc
// @Summary View an invoice
// @Description Invoice with line items, visible to its owner or an organiser
// @Tags Invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (ic *InvoiceController) View(c *gin.Context) {
	invoice, err := ic.invoiceService.GetInvoice(
		c.Request.Context(), c.Param("id"),
		c.GetString("person_id"), c.GetString("role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Invoice fetched successfully")
}

// RecordPayment godoc
// @Summary Record a payment result
// @Description Attach a gateway payment result to the invoice; the first payment freezes it
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice id"
// @Param request body request_models.RecordPaymentRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices/{id}/payments [post]
func (ic *InvoiceController) RecordPayment(c *gin.Context) {
	var req request_models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	invoice, err := ic.invoiceService.RecordPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Payment recorded")
}
