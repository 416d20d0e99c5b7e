package controller

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/usecase/importexport"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// maxCSVBytes caps the accepted size of an uploaded CSV document.
const maxCSVBytes = 16 << 20

// CSVController handles transaction import and export endpoints.
type CSVController struct {
	importUseCase *importexport.ImportCSVUseCase
	exportUseCase *importexport.ExportCSVUseCase
}

// NewCSVController creates a new CSV controller instance.
func NewCSVController(importUseCase *importexport.ImportCSVUseCase, exportUseCase *importexport.ExportCSVUseCase) *CSVController {
	return &CSVController{
		importUseCase: importUseCase,
		exportUseCase: exportUseCase,
	}
}

// Export handles GET /transactions/export requests.
func (c *CSVController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export transactions",
		})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "text/csv", output.Payload)
}

// Import handles POST /transactions/import requests. The body is the CSV
// document itself.
func (c *CSVController) Import(ctx *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxCSVBytes))
	if err != nil || len(payload) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read CSV document",
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), importexport.ImportCSVInput{
		Payload: payload,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "CSV document could not be parsed",
		})
		return
	}

	resp := dto.ImportCSVResponse{Imported: output.Imported}
	for _, skip := range output.Skipped {
		resp.Skipped = append(resp.Skipped, dto.SkipEntry{
			Line:   skip.Line,
			Reason: skip.Reason,
		})
	}

	ctx.JSON(http.StatusOK, resp)
}
