package driver

import (
	"net/http/httptest"

	"dataforge-server/internal/dataset/generator"
	"dataforge-server/internal/dataset/httpapi"
	"dataforge-server/internal/dataset/inference"
	"dataforge-server/internal/dataset/persistence"
	"dataforge-server/internal/dataset/usecases"
	"dataforge-server/internal/infra/httpserver"
	"dataforge-server/internal/infra/llm"
	"dataforge-server/internal/infra/sql"
	"dataforge-server/internal/infra/utils"
)

// NewInProcessServer serves the full API on a loopback port. The language model has no
// credentials, so schema generation fails the way an unconfigured deployment does.
func NewInProcessServer() *httptest.Server {
	engine := inference.NewEngine(inference.Options{})
	model := llm.NewGeminiClient(llm.GeminiConfig{})

	orm, err := sql.NewMemoryORM(utils.GenerateUUID())
	if err != nil {
		panic(err)
	}
	templates, err := persistence.NewTemplateRepository(orm)
	if err != nil {
		panic(err)
	}

	server := httpserver.NewServer(
		httpserver.Options{Version: "functional"},
		httpapi.NewSchemaController(usecases.NewSchemaService(engine, model), engine.MaxFileSize()),
		httpapi.NewDataController(usecases.NewDataService(generator.NewGenerator(), usecases.DataServiceOptions{})),
		httpapi.NewTemplateController(usecases.NewTemplateService(templates)),
	)

	return httptest.NewServer(server.Handler())
}
