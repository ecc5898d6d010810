package httpapi

import (
	"net/http"

	"dataforge-server/internal/dataset/domain"
	"dataforge-server/internal/dataset/httpapi/internal"
	"dataforge-server/internal/dataset/usecases"
	"dataforge-server/internal/infra/httpserver"

	"github.com/go-playground/validator/v10"
)

const (
	fetchTemplatesErrMessage = "Failed to fetch templates"
	createTemplateErrMessage = "Failed to create template"
	deleteTemplateErrMessage = "Failed to delete template"
)

func NewTemplateController(service usecases.TemplateService) *TemplateController {
	return &TemplateController{
		service:  service,
		validate: internal.NewValidator(),
	}
}

type TemplateController struct {
	service  usecases.TemplateService
	validate *validator.Validate
}

func (c *TemplateController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /api/templates", c.listTemplates())
	router.Handle("POST /api/templates", c.createTemplate())
	router.Handle("DELETE /api/templates/{id}", c.deleteTemplate())
}

func (c *TemplateController) listTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := c.service.ListTemplates(r.Context())
		if err != nil {
			replyWithServiceError(w, err, fetchTemplatesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTemplateListResponse(templates))
	}
}

func (c *TemplateController) createTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TemplateCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		if err := c.validate.Struct(body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, internal.ValidationMessage(err))
			return
		}

		template, err := c.service.CreateTemplate(r.Context(), body.ToDraft())
		if err != nil {
			replyWithServiceError(w, err, createTemplateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToTemplateResponse(template))
	}
}

func (c *TemplateController) deleteTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		if err := c.service.DeleteTemplate(r.Context(), domain.ID(id)); err != nil {
			replyWithServiceError(w, err, deleteTemplateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DeleteResponse{Success: true})
	}
}
