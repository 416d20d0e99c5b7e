package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/usecase/backup"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// maxBackupBytes caps the accepted size of an uploaded snapshot.
const maxBackupBytes = 32 << 20

// BackupController handles backup, restore and reset endpoints.
type BackupController struct {
	createUseCase  *backup.CreateBackupUseCase
	restoreUseCase *backup.RestoreBackupUseCase
	resetUseCase   *backup.ResetDefaultsUseCase
	emailUseCase   *backup.EmailBackupUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	createUseCase *backup.CreateBackupUseCase,
	restoreUseCase *backup.RestoreBackupUseCase,
	resetUseCase *backup.ResetDefaultsUseCase,
	emailUseCase *backup.EmailBackupUseCase,
) *BackupController {
	return &BackupController{
		createUseCase:  createUseCase,
		restoreUseCase: restoreUseCase,
		resetUseCase:   resetUseCase,
		emailUseCase:   emailUseCase,
	}
}

// Download handles GET /backup requests.
func (c *BackupController) Download(ctx *gin.Context) {
	output, err := c.createUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create backup",
		})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "application/json", output.Payload)
}

// Restore handles POST /backup/restore requests. The body is the snapshot
// document itself.
func (c *BackupController) Restore(ctx *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxBackupBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read backup file",
		})
		return
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), backup.RestoreBackupInput{
		Payload: payload,
	})
	if err != nil {
		respondBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RestoreBackupResponse{
		Message:      "Backup restored successfully",
		SnapshotDate: output.SnapshotDate,
	})
}

// Reset handles POST /reset requests. Admin scope only.
func (c *BackupController) Reset(ctx *gin.Context) {
	if err := c.resetUseCase.Execute(ctx.Request.Context()); err != nil {
		respondBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "All data reset to defaults",
	})
}

// Email handles POST /backup/email requests.
func (c *BackupController) Email(ctx *gin.Context) {
	var req dto.EmailBackupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A valid recipient email is required",
		})
		return
	}

	output, err := c.emailUseCase.Execute(ctx.Request.Context(), backup.EmailBackupInput{
		Recipient: req.Recipient,
	})
	if err != nil {
		var emailErr *domainerror.EmailError
		if errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodeEmailNotConfigured {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "Email delivery is not configured",
				Code:  string(emailErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Failed to send backup email",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.EmailBackupResponse{
		Message:  "Backup sent",
		Filename: output.Filename,
	})
}

// respondBackupError maps backup errors onto HTTP responses.
func respondBackupError(ctx *gin.Context, err error) {
	var backupErr *domainerror.BackupError
	if !errors.As(err, &backupErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Backup operation failed",
		})
		return
	}

	status := http.StatusBadRequest
	if backupErr.Code == domainerror.ErrCodeResetFailed {
		status = http.StatusInternalServerError
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: backupErr.Message,
		Code:  string(backupErr.Code),
	})
}
