package cmd

import (
	adapterfs "forkit/internal/adapters/fs"
	adaptergitrepo "forkit/internal/adapters/gitrepo"
	adapterlauncher "forkit/internal/adapters/launcher"
	adapterpicker "forkit/internal/adapters/picker"
	adapterplatform "forkit/internal/adapters/platform"
	adapterprocess "forkit/internal/adapters/process"
	adapterworkspace "forkit/internal/adapters/workspace"
	adapterwsl "forkit/internal/adapters/wsl"
	"forkit/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	DiagnosticsService *services.DiagnosticsService
	LaunchService      *services.LaunchService

	// Ambient context sources
	Detector *adapterplatform.Detector
	Loader   *adapterworkspace.Loader
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(translatorHelper string) *Container {
	// Create adapters
	env := adapterfs.OSEnv{}
	fileSystem := adapterfs.NewOSFileSystem()
	translator := adapterwsl.NewTranslator(adapterprocess.NewExecRunner(), translatorHelper)

	// Create services
	resolver := services.NewRootResolver(adapterworkspace.NewContainment(), adapterpicker.NewPicker())
	locator := services.NewExecutableLocator(env, fileSystem, translator)
	launchService := services.NewLaunchService(
		resolver,
		locator,
		translator,
		adapterlauncher.NewLauncher(),
		adaptergitrepo.NewLocator(),
	)

	return &Container{
		DiagnosticsService: services.NewDiagnosticsService(locator, translator),
		LaunchService:      launchService,
		Detector:           adapterplatform.NewDetector(env),
		Loader:             adapterworkspace.NewLoader(),
	}
}
