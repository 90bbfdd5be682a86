package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pension-backend/services"
	"pension-backend/utils"
)

type InvoiceController struct {
	Invoices *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{Invoices: svc}
}

func (ctrl *InvoiceController) GetInvoices(c *gin.Context) {
	list, err := ctrl.Invoices.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *InvoiceController) GetInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	invoice, err := ctrl.Invoices.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

func (ctrl *InvoiceController) MarkPaid(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.Invoices.MarkPaid(id); err != nil {
		respondServiceError(c, err)
		return
	}
	invoice, err := ctrl.Invoices.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}
