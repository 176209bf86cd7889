package response

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var _ surveyRepo = &surveyRepoMock{}

type surveyRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Survey, error)
	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Survey, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
}

func (mock *surveyRepoMock) GetByID(ctx context.Context, id int64) (*domain.Survey, error) {
	if mock.GetByIDFunc == nil {
		panic("surveyRepoMock.GetByIDFunc: method is nil but surveyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *surveyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *surveyRepoMock) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Survey, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("surveyRepoMock.GetByIDForUpdateFunc: method is nil but surveyRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *surveyRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}
