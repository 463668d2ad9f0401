package bootstrap

import (
	"fmt"

	dictinadapter "lector/internal/modules/dict/adapter/in"
	dictoutadapter "lector/internal/modules/dict/adapter/out"
	dictout "lector/internal/modules/dict/port/out"
	dictservice "lector/internal/modules/dict/service"
	dictusecase "lector/internal/modules/dict/usecase"
	libraryinadapter "lector/internal/modules/library/adapter/in"
	libraryoutadapter "lector/internal/modules/library/adapter/out"
	libraryservice "lector/internal/modules/library/service"
	libraryusecase "lector/internal/modules/library/usecase"
	providerinadapter "lector/internal/modules/provider/adapter/in"
	provideroutadapter "lector/internal/modules/provider/adapter/out"
	providerservice "lector/internal/modules/provider/service"
	providerusecase "lector/internal/modules/provider/usecase"
	readercliadapter "lector/internal/modules/reader/adapter/in"
	readeroutadapter "lector/internal/modules/reader/adapter/out"
	readerservice "lector/internal/modules/reader/service"
	readerusecase "lector/internal/modules/reader/usecase"
	sessioninadapter "lector/internal/modules/session/adapter/in"
	sessionoutadapter "lector/internal/modules/session/adapter/out"
	sessionservice "lector/internal/modules/session/service"
	sessionusecase "lector/internal/modules/session/usecase"
	"lector/internal/platform/clock"
	"lector/internal/platform/config"
	"lector/internal/platform/id"
	"lector/internal/platform/logging"
)

type App struct {
	LibraryCLI  libraryinadapter.CLIHandler
	ReaderCLI   readercliadapter.CLIHandler
	SessionCLI  sessioninadapter.CLIHandler
	DictCLI     dictinadapter.CLIHandler
	ProviderCLI providerinadapter.CLIHandler

	closers []func()
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	logger := logging.New("lector", cfg.LogPath)

	libraryStore := libraryoutadapter.NewShelfStore(cfg.ShelfPath)
	libraryProjector, err := libraryoutadapter.NewSQLiteDocumentProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new document projector: %w", err)
	}
	librarySvc := libraryservice.NewDocumentService(clk, ids, libraryStore, libraryProjector)
	libraryUC := libraryusecase.NewInteractor(librarySvc)

	activeStore := sessionoutadapter.NewFileActiveSessionStore(cfg.LibraryPath)
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids,
			sessionoutadapter.NewSessionLogStore(cfg.LibraryPath),
			sessionoutadapter.NewFileStateStore(cfg.StateDir),
		),
		libraryUC,
		activeStore,
	)

	pdfReader := readeroutadapter.NewLocalPDFReader()
	readerUC := readerusecase.NewInteractor(readerservice.NewReaderService(
		pdfReader,
		readeroutadapter.NewEPUBReader(),
		readeroutadapter.NewTextReader(),
		pdfReader,
		readeroutadapter.NewLibraryDocumentAdapter(libraryUC),
		readeroutadapter.NewLibraryProgressAdapter(libraryUC),
		readeroutadapter.NewStatePositionAdapter(sessionUC),
	))

	providerUC := providerusecase.NewInteractor(providerservice.NewProviderService(
		provideroutadapter.NewFileManifestStore(cfg.LibraryPath, cfg.ProvidersPath),
		provideroutadapter.NewGRPCHost(),
	))

	stardictProvider := dictoutadapter.NewStarDictProvider(cfg.DictDir, logger.Named("stardict"))
	history, err := dictoutadapter.NewSQLiteHistory(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new lookup history: %w", err)
	}
	lookupSvc, err := dictservice.NewLookupService(clk,
		[]dictout.Provider{
			stardictProvider,
			dictoutadapter.NewProviderBridge(providerUC),
			dictoutadapter.NewMemoryProvider(),
		},
		history,
		logger.Named("dict"),
	)
	if err != nil {
		return nil, fmt.Errorf("new lookup service: %w", err)
	}
	dictUC := dictusecase.NewInteractor(lookupSvc)

	return &App{
		LibraryCLI:  libraryinadapter.NewCLIHandler(libraryUC),
		ReaderCLI:   readercliadapter.NewCLIHandler(readerUC),
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		DictCLI:     dictinadapter.NewCLIHandler(dictUC),
		ProviderCLI: providerinadapter.NewCLIHandler(providerUC),
		closers:     []func(){stardictProvider.Close},
	}, nil
}

// Close releases dictionary file handles.
func (a *App) Close() {
	for _, close := range a.closers {
		close()
	}
}
