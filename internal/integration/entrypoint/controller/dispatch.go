package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/action"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// DispatchController handles the action dispatch endpoint.
type DispatchController struct {
	store *store.Store
}

// NewDispatchController creates a new dispatch controller instance.
func NewDispatchController(s *store.Store) *DispatchController {
	return &DispatchController{store: s}
}

// Dispatch handles POST /dispatch requests. An unknown action type is not an
// error at the transport level: it is acknowledged and reported as not
// applied, so older clients cannot crash the store.
func (c *DispatchController) Dispatch(ctx *gin.Context) {
	var req dto.DispatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	a, err := action.Parse(action.Envelope{
		Type:    action.Kind(req.Type),
		Payload: req.Payload,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrUnknownAction) {
			ctx.JSON(http.StatusOK, dto.DispatchResponse{
				Applied:       false,
				ChangedSlices: []string{},
			})
			return
		}

		var actionErr *domainerror.ActionError
		resp := dto.ErrorResponse{Error: "Malformed action payload"}
		if errors.As(err, &actionErr) {
			resp.Code = string(actionErr.Code)
		}
		ctx.JSON(http.StatusBadRequest, resp)
		return
	}

	slices := c.store.Dispatch(ctx.Request.Context(), a)

	changed := make([]string, 0, len(slices))
	for _, slice := range slices {
		changed = append(changed, string(slice))
	}

	ctx.JSON(http.StatusOK, dto.DispatchResponse{
		Applied:       true,
		ChangedSlices: changed,
	})
}
