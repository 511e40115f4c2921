// Package wire provides dependency injection for the hearth application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/hearth/internal/adapters/cli"
	"github.com/example/hearth/internal/adapters/sqlite"
	"github.com/example/hearth/internal/app"
	"github.com/example/hearth/internal/db"
	"github.com/example/hearth/internal/ports/primary"
)

var (
	projectService primary.ProjectService
	phaseService   primary.PhaseService
	itemService    primary.ItemService
	boardService   primary.BoardService
	updateService  primary.UpdateService
	once           sync.Once
)

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// PhaseService returns the singleton PhaseService instance.
func PhaseService() primary.PhaseService {
	once.Do(initServices)
	return phaseService
}

// ItemService returns the singleton ItemService instance.
func ItemService() primary.ItemService {
	once.Do(initServices)
	return itemService
}

// BoardService returns the singleton BoardService instance.
func BoardService() primary.BoardService {
	once.Do(initServices)
	return boardService
}

// UpdateService returns the singleton UpdateService instance.
func UpdateService() primary.UpdateService {
	once.Do(initServices)
	return updateService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	projectRepo := sqlite.NewProjectRepository(database)
	phaseRepo := sqlite.NewPhaseRepository(database)
	itemRepo := sqlite.NewItemRepository(database)
	updateRepo := sqlite.NewUpdateRepository(database)
	memberRepo := sqlite.NewMemberRepository(database)

	activity := app.NewActivityWriter(updateRepo, os.Stderr)
	celebration := cliadapter.NewCelebrationPrinter(os.Stdout)

	// Services (primary ports implementation)
	projectService = app.NewProjectService(projectRepo, phaseRepo, itemRepo)
	phaseService = app.NewPhaseService(phaseRepo, projectRepo, memberRepo, activity)
	itemService = app.NewItemService(itemRepo, phaseRepo, activity, celebration)
	boardService = app.NewBoardService(phaseRepo, itemRepo)
	updateService = app.NewUpdateService(updateRepo, memberRepo)
}
