package controller

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/usecase/receipt"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// ReceiptController handles the receipt scan endpoint.
type ReceiptController struct {
	scanUseCase *receipt.ScanReceiptUseCase
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(scanUseCase *receipt.ScanReceiptUseCase) *ReceiptController {
	return &ReceiptController{scanUseCase: scanUseCase}
}

// Scan handles POST /receipts/scan requests. The image travels base64
// encoded in the JSON body.
func (c *ReceiptController) Scan(ctx *gin.Context) {
	var req dto.ScanReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Image data is not valid base64",
			Code:  string(domainerror.ErrCodeEmptyReceiptImage),
		})
		return
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), receipt.ScanReceiptInput{
		TransactionID: req.TransactionID,
		Image:         image,
		MimeType:      mimeType,
	})
	if err != nil {
		respondScanError(ctx, err)
		return
	}

	resp := dto.ScanReceiptResponse{
		Description: output.Draft.Description,
	}
	if output.Draft.Amount != nil {
		amount := output.Draft.Amount.StringFixed(2)
		resp.Amount = &amount
	}

	ctx.JSON(http.StatusOK, resp)
}

// respondScanError maps scan errors onto HTTP responses.
func respondScanError(ctx *gin.Context, err error) {
	var scanErr *domainerror.ScanError
	if !errors.As(err, &scanErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Receipt scan failed",
		})
		return
	}

	status := http.StatusBadRequest
	switch scanErr.Code {
	case domainerror.ErrCodeScannerNotConfigured:
		status = http.StatusServiceUnavailable
	case domainerror.ErrCodeScanFailed:
		status = http.StatusBadGateway
	case domainerror.ErrCodeReceiptImageTooLarge:
		status = http.StatusRequestEntityTooLarge
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: scanErr.Message,
		Code:  string(scanErr.Code),
	})
}
