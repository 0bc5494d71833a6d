package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophclip/internal/server/repositories/entries"
)

// MemoryRepositoryManager serves a single in-process repository. Data does
// not survive a restart.
type MemoryRepositoryManager struct {
	repo *entries.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{repo: entries.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Entries() entries.Repository { return m.repo }
func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Ping(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Close() error { return nil }
