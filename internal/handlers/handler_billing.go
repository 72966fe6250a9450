package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hasanqazi87/lab-site/internal/core/ports/services"
	"github.com/hasanqazi87/lab-site/internal/dto"
	"github.com/hasanqazi87/lab-site/internal/middleware"
)

// billingHandler handles HTTP requests for billing runs and their documents
type billingHandler struct {
	billingService portssvc.BillingSvcFacade
}

// newBillingHandler creates a new billingHandler
func newBillingHandler(bs portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{
		billingService: bs,
	}
}

// registerBillingRoutes registers the billing run lifecycle routes
func registerBillingRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	billingGroup := rg.Group("/billing/runs")
	{
		billingGroup.POST("", h.createRun)
		billingGroup.GET("/:run_id", h.getRun)
		billingGroup.DELETE("/:run_id", h.discardRun)
		billingGroup.POST("/:run_id/register", h.generateRegister)
		billingGroup.POST("/:run_id/invoices", h.generateInvoices)
		billingGroup.POST("/:run_id/summary", h.generateSummary)
		billingGroup.POST("/:run_id/credit", h.generateCreditMemo)
	}
}

// createRun fetches and aggregates one period's jobs and returns the review
// dataset for operator inspection.
func (h *billingHandler) createRun(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateBillingRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid create run request", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.billingService.CreateRun(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// getRun rebuilds the review dataset from a run snapshot.
func (h *billingHandler) getRun(c *gin.Context) {
	review, err := h.billingService.GetRun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// discardRun drops a run snapshot without generating anything.
func (h *billingHandler) discardRun(c *gin.Context) {
	if err := h.billingService.DiscardRun(c.Request.Context(), c.Param("run_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// generateRegister returns the invoice register PDF for one category.
func (h *billingHandler) generateRegister(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.billingService.GenerateRegister(c.Request.Context(), c.Param("run_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	sendDocument(c, doc)
}

// generateInvoices returns the combined invoices PDF and commits the
// category's next invoice start. Per-account copies are written server-side.
func (h *billingHandler) generateInvoices(c *gin.Context) {
	var req dto.GenerateInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.billingService.GenerateInvoices(c.Request.Context(), c.Param("run_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("X-Saved-Files", fmt.Sprintf("%d", len(doc.SavedFiles)))
	sendDocument(c, doc)
}

// generateSummary returns the billing summary workbook.
func (h *billingHandler) generateSummary(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.billingService.GenerateSummary(c.Request.Context(), c.Param("run_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	sendDocument(c, doc)
}

// generateCreditMemo returns the credit memo request PDF for one account.
func (h *billingHandler) generateCreditMemo(c *gin.Context) {
	var req dto.GenerateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.billingService.GenerateCreditMemo(c.Request.Context(), c.Param("run_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	sendDocument(c, doc)
}

// sendDocument writes a rendered artifact as an attachment.
func sendDocument(c *gin.Context, doc *dto.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
