//go:build wireinject
// +build wireinject

package wire

import (
	"dataforge-server/internal/dataset/generator"
	"dataforge-server/internal/dataset/httpapi"
	"dataforge-server/internal/dataset/inference"
	"dataforge-server/internal/dataset/persistence"
	"dataforge-server/internal/dataset/usecases"

	"github.com/google/wire"
)

func InitializeSchemaController() (*httpapi.SchemaController, error) {
	wire.Build(
		provideAppConfig,
		provideInferenceOptions,
		inference.NewEngine,
		wire.Bind(new(usecases.FieldInferrer), new(*inference.Engine)),
		provideMaxUploadSize,
		provideCacheConfig,
		provideLanguageModel,
		usecases.NewSchemaService,
		wire.Bind(new(usecases.SchemaService), new(*usecases.SimpleSchemaService)),
		httpapi.NewSchemaController,
	)
	return nil, nil
}

func InitializeDataController() (*httpapi.DataController, error) {
	wire.Build(
		provideAppConfig,
		provideDataServiceOptions,
		generator.NewGenerator,
		wire.Bind(new(usecases.RecordGenerator), new(*generator.Generator)),
		usecases.NewDataService,
		wire.Bind(new(usecases.DataService), new(*usecases.SimpleDataService)),
		httpapi.NewDataController,
	)
	return nil, nil
}

func InitializeTemplateController() (*httpapi.TemplateController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewTemplateRepository,
		wire.Bind(new(usecases.TemplateRepository), new(*persistence.SimpleTemplateRepository)),
		usecases.NewTemplateService,
		wire.Bind(new(usecases.TemplateService), new(*usecases.SimpleTemplateService)),
		httpapi.NewTemplateController,
	)
	return nil, nil
}
