package survey

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var _ surveyRepo = &surveyRepoMock{}

type surveyRepoMock struct {
	CreateFunc           func(ctx context.Context, s domain.Survey) (domain.Survey, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Survey, error)
	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Survey, error)
	GetByTokenFunc       func(ctx context.Context, token string) (*domain.Survey, error)
	ListFunc             func(ctx context.Context, filter domain.StatusFilter) ([]domain.SurveyListItem, error)
	UpdateStatusFunc     func(ctx context.Context, id int64, status domain.SurveyStatus) error

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.Survey
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
		GetByToken []struct {
			Ctx   context.Context
			Token string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.StatusFilter
		}
		UpdateStatus []struct {
			Ctx    context.Context
			Id     int64
			Status domain.SurveyStatus
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockGetByToken       sync.RWMutex
	lockList             sync.RWMutex
	lockUpdateStatus     sync.RWMutex
}

func (mock *surveyRepoMock) Create(ctx context.Context, s domain.Survey) (domain.Survey, error) {
	if mock.CreateFunc == nil {
		panic("surveyRepoMock.CreateFunc: method is nil but surveyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Survey
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *surveyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Survey
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *surveyRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("surveyRepoMock.DeleteFunc: method is nil but surveyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *surveyRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *surveyRepoMock) GetByToken(ctx context.Context, token string) (*domain.Survey, error) {
	if mock.GetByTokenFunc == nil {
		panic("surveyRepoMock.GetByTokenFunc: method is nil but surveyRepo.GetByToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockGetByToken.Lock()
	mock.calls.GetByToken = append(mock.calls.GetByToken, callInfo)
	mock.lockGetByToken.Unlock()
	return mock.GetByTokenFunc(ctx, token)
}

func (mock *surveyRepoMock) GetByTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockGetByToken.RLock()
	calls := mock.calls.GetByToken
	mock.lockGetByToken.RUnlock()
	return calls
}

func (mock *surveyRepoMock) List(ctx context.Context, filter domain.StatusFilter) ([]domain.SurveyListItem, error) {
	if mock.ListFunc == nil {
		panic("surveyRepoMock.ListFunc: method is nil but surveyRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.StatusFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *surveyRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.StatusFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *surveyRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.SurveyStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("surveyRepoMock.UpdateStatusFunc: method is nil but surveyRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Status domain.SurveyStatus
	}{
		Ctx:    ctx,
		Id:     id,
		Status: status,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *surveyRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	Id     int64
	Status domain.SurveyStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
