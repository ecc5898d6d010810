package wire

import (
	"log/slog"

	"dataforge-server/cmd/config"
	"dataforge-server/internal/dataset/inference"
	"dataforge-server/internal/dataset/usecases"
	"dataforge-server/internal/infra/cache"
	"dataforge-server/internal/infra/llm"
	"dataforge-server/internal/infra/sql"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideInferenceOptions(config config.AppConfig) inference.Options {
	return inference.Options{
		MaxFileSize: config.Upload.MaxFileSize,
	}
}

// provideMaxUploadSize reads the limit back from the engine so both agree on the default.
func provideMaxUploadSize(engine *inference.Engine) int64 {
	return engine.MaxFileSize()
}

func provideDataServiceOptions(config config.AppConfig) usecases.DataServiceOptions {
	return usecases.DataServiceOptions{
		PreviewMaxRows: config.Generation.PreviewMaxRows,
		ExportMaxRows:  config.Generation.ExportMaxRows,
	}
}

func provideCacheConfig(config config.AppConfig) cache.Config {
	return cache.Config{
		Backend:  config.Cache.Backend,
		TTL:      config.Cache.TTL,
		MaxItems: config.Cache.MaxItems,
		Redis: cache.RedisConfig{
			Addr:     config.Cache.Redis.Addr,
			Password: config.Cache.Redis.Password,
			DB:       config.Cache.Redis.DB,
			Prefix:   "dataforge:",
		},
	}
}

// provideLanguageModel falls back to an uncached model when the cache backend is unreachable.
// Only replies that parse into a schema are cached.
func provideLanguageModel(config config.AppConfig, cacheConfig cache.Config) usecases.LanguageModel {
	model := llm.NewGeminiClient(llm.GeminiConfig{
		APIKey: config.Gemini.APIKey,
		Model:  config.Gemini.Model,
	})

	store, err := cache.New(cacheConfig)
	if err != nil {
		slog.Warn("schema reply cache disabled", slog.String("error", err.Error()))
		return model
	}

	return llm.NewCachedModel(model, store, cacheConfig.TTL, usecases.ValidateModelReply)
}

func provideDatabase(config config.AppConfig) sql.ORM {
	orm, err := sql.NewMemoryORM(config.Database.Name)
	if err != nil {
		panic(err)
	}

	return orm
}
