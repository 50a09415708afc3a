package adaptor

import (
	"net/http"

	"train-booking/internal/dto/request"
	"train-booking/internal/usecase"
	"train-booking/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	catalog usecase.CatalogService
	log     *zap.Logger
}

func NewAdminHandler(catalog usecase.CatalogService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ProvisionRoutes handles POST /api/admin/routes (admin only)
func (h *AdminHandler) ProvisionRoutes(w http.ResponseWriter, r *http.Request) {
	var req request.ProvisionRoutesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.catalog.ProvisionRoutes(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "provision routes")
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	role, _ := utils.GetRoleFromContext(r.Context())
	h.log.Info("Routes provisioned by admin",
		zap.String("user_id", userID.String()),
		zap.String("role", role),
		zap.Int("created", result.Created))

	utils.ResponseCreated(w, "Routes provisioned", result)
}
