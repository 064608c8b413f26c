package app

import (
	"go.uber.org/zap"

	"vidsum/internal/api/server"
	"vidsum/internal/api/v1/services"
	"vidsum/internal/app/jobs"
	"vidsum/internal/app/pipeline"
	"vidsum/internal/config"
)

// App bundles the wired HTTP application parts the serve command needs.
type App struct {
	Server *server.Server
	Store  *jobs.Store
}

// NewApp creates an App from its wired parts.
func NewApp(srv *server.Server, store *jobs.Store) *App {
	return &App{
		Server: srv,
		Store:  store,
	}
}

// NewCLIProcessor builds a pipeline processor for the one-shot CLI
// path, where credentials come from the environment.
func NewCLIProcessor(
	keys config.APIKeys,
	transcriberProvider, summarizerProvider string,
	logger *zap.Logger,
	opts pipeline.Options,
) (*pipeline.Processor, error) {
	factory := services.DefaultProviderFactory()
	creds := services.Credentials{
		OpenAI:     keys.OpenAI,
		AssemblyAI: keys.AssemblyAI,
		Gemini:     keys.Gemini,
	}

	transcriber, err := factory.NewTranscriber(transcriberProvider, creds)
	if err != nil {
		return nil, err
	}
	summarizer, err := factory.NewSummarizer(summarizerProvider, creds)
	if err != nil {
		return nil, err
	}

	normalizer := provideNormalizer(logger)
	return pipeline.NewProcessor(normalizer, transcriber, summarizer, logger, nil, opts), nil
}
