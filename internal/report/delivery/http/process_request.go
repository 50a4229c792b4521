package http

import (
	"admin-srv/internal/model"
	"admin-srv/internal/report"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// bindQuery binds query filters into req and resolves the scope. All report
// requests follow the same shape.
func bindQuery[T any](h *handler, c *gin.Context, name string) (T, model.Scope, error) {
	var req T

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.%s: ShouldBindQuery failed: %v", name, err)
		return req, model.Scope{}, errInvalidInput
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

// processExportRequest turns the route param and query string into an export
// input. Everything except format and refresh passes through as upstream
// filters.
func (h *handler) processExportRequest(c *gin.Context) (report.ExportInput, model.Scope) {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if key == "format" || key == "refresh" || len(values) == 0 {
			continue
		}
		params[key] = values[0]
	}

	input := report.ExportInput{
		Family: c.Param("family"),
		Format: c.Query("format"),
		Params: params,
		Force:  c.Query("refresh") == "true",
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc
}
