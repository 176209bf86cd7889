package report

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var _ auditReader = &auditReaderMock{}

type auditReaderMock struct {
	ListByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error)

	calls struct {
		ListByEntity []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   int64
			Limit      int
		}
	}
	lockListByEntity sync.RWMutex
}

func (mock *auditReaderMock) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error) {
	if mock.ListByEntityFunc == nil {
		panic("auditReaderMock.ListByEntityFunc: method is nil but auditReader.ListByEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   int64
		Limit      int
	}{
		Ctx:        ctx,
		EntityType: entityType,
		EntityID:   entityID,
		Limit:      limit,
	}
	mock.lockListByEntity.Lock()
	mock.calls.ListByEntity = append(mock.calls.ListByEntity, callInfo)
	mock.lockListByEntity.Unlock()
	return mock.ListByEntityFunc(ctx, entityType, entityID, limit)
}

func (mock *auditReaderMock) ListByEntityCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   int64
	Limit      int
} {
	mock.lockListByEntity.RLock()
	calls := mock.calls.ListByEntity
	mock.lockListByEntity.RUnlock()
	return calls
}
