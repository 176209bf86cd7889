package notify

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var _ surveyRepo = &surveyRepoMock{}

type surveyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Survey, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
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
