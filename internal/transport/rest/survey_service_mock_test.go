package rest

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
	"github.com/sustainage/materiality-survey/internal/service/survey"
)

var _ surveyService = &surveyServiceMock{}

type surveyServiceMock struct {
	CreateSurveyFunc    func(ctx context.Context, actor string, input survey.CreateSurveyInput) (*survey.CreateSurveyResult, error)
	DeleteSurveyFunc    func(ctx context.Context, actor string, id int64) error
	DistributionURLFunc func(token string) string
	GetSurveyFunc       func(ctx context.Context, id int64) (*survey.Detail, error)
	ListSurveysFunc     func(ctx context.Context, status string) ([]survey.ListEntry, error)
	UpdateStatusFunc    func(ctx context.Context, actor string, input survey.UpdateStatusInput) (*domain.Survey, error)

	calls struct {
		CreateSurvey []struct {
			Ctx   context.Context
			Actor string
			Input survey.CreateSurveyInput
		}
		DeleteSurvey []struct {
			Ctx   context.Context
			Actor string
			Id    int64
		}
		DistributionURL []struct {
			Token string
		}
		GetSurvey []struct {
			Ctx context.Context
			Id  int64
		}
		ListSurveys []struct {
			Ctx    context.Context
			Status string
		}
		UpdateStatus []struct {
			Ctx   context.Context
			Actor string
			Input survey.UpdateStatusInput
		}
	}
	lockCreateSurvey    sync.RWMutex
	lockDeleteSurvey    sync.RWMutex
	lockDistributionURL sync.RWMutex
	lockGetSurvey       sync.RWMutex
	lockListSurveys     sync.RWMutex
	lockUpdateStatus    sync.RWMutex
}

func (mock *surveyServiceMock) CreateSurvey(ctx context.Context, actor string, input survey.CreateSurveyInput) (*survey.CreateSurveyResult, error) {
	if mock.CreateSurveyFunc == nil {
		panic("surveyServiceMock.CreateSurveyFunc: method is nil but surveyService.CreateSurvey was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor string
		Input survey.CreateSurveyInput
	}{
		Ctx:   ctx,
		Actor: actor,
		Input: input,
	}
	mock.lockCreateSurvey.Lock()
	mock.calls.CreateSurvey = append(mock.calls.CreateSurvey, callInfo)
	mock.lockCreateSurvey.Unlock()
	return mock.CreateSurveyFunc(ctx, actor, input)
}

func (mock *surveyServiceMock) CreateSurveyCalls() []struct {
	Ctx   context.Context
	Actor string
	Input survey.CreateSurveyInput
} {
	mock.lockCreateSurvey.RLock()
	calls := mock.calls.CreateSurvey
	mock.lockCreateSurvey.RUnlock()
	return calls
}

func (mock *surveyServiceMock) DeleteSurvey(ctx context.Context, actor string, id int64) error {
	if mock.DeleteSurveyFunc == nil {
		panic("surveyServiceMock.DeleteSurveyFunc: method is nil but surveyService.DeleteSurvey was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor string
		Id    int64
	}{
		Ctx:   ctx,
		Actor: actor,
		Id:    id,
	}
	mock.lockDeleteSurvey.Lock()
	mock.calls.DeleteSurvey = append(mock.calls.DeleteSurvey, callInfo)
	mock.lockDeleteSurvey.Unlock()
	return mock.DeleteSurveyFunc(ctx, actor, id)
}

func (mock *surveyServiceMock) DeleteSurveyCalls() []struct {
	Ctx   context.Context
	Actor string
	Id    int64
} {
	mock.lockDeleteSurvey.RLock()
	calls := mock.calls.DeleteSurvey
	mock.lockDeleteSurvey.RUnlock()
	return calls
}

func (mock *surveyServiceMock) DistributionURL(token string) string {
	if mock.DistributionURLFunc == nil {
		panic("surveyServiceMock.DistributionURLFunc: method is nil but surveyService.DistributionURL was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockDistributionURL.Lock()
	mock.calls.DistributionURL = append(mock.calls.DistributionURL, callInfo)
	mock.lockDistributionURL.Unlock()
	return mock.DistributionURLFunc(token)
}

func (mock *surveyServiceMock) DistributionURLCalls() []struct {
	Token string
} {
	mock.lockDistributionURL.RLock()
	calls := mock.calls.DistributionURL
	mock.lockDistributionURL.RUnlock()
	return calls
}

func (mock *surveyServiceMock) GetSurvey(ctx context.Context, id int64) (*survey.Detail, error) {
	if mock.GetSurveyFunc == nil {
		panic("surveyServiceMock.GetSurveyFunc: method is nil but surveyService.GetSurvey was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetSurvey.Lock()
	mock.calls.GetSurvey = append(mock.calls.GetSurvey, callInfo)
	mock.lockGetSurvey.Unlock()
	return mock.GetSurveyFunc(ctx, id)
}

func (mock *surveyServiceMock) GetSurveyCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetSurvey.RLock()
	calls := mock.calls.GetSurvey
	mock.lockGetSurvey.RUnlock()
	return calls
}

func (mock *surveyServiceMock) ListSurveys(ctx context.Context, status string) ([]survey.ListEntry, error) {
	if mock.ListSurveysFunc == nil {
		panic("surveyServiceMock.ListSurveysFunc: method is nil but surveyService.ListSurveys was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status string
	}{
		Ctx:    ctx,
		Status: status,
	}
	mock.lockListSurveys.Lock()
	mock.calls.ListSurveys = append(mock.calls.ListSurveys, callInfo)
	mock.lockListSurveys.Unlock()
	return mock.ListSurveysFunc(ctx, status)
}

func (mock *surveyServiceMock) ListSurveysCalls() []struct {
	Ctx    context.Context
	Status string
} {
	mock.lockListSurveys.RLock()
	calls := mock.calls.ListSurveys
	mock.lockListSurveys.RUnlock()
	return calls
}

func (mock *surveyServiceMock) UpdateStatus(ctx context.Context, actor string, input survey.UpdateStatusInput) (*domain.Survey, error) {
	if mock.UpdateStatusFunc == nil {
		panic("surveyServiceMock.UpdateStatusFunc: method is nil but surveyService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor string
		Input survey.UpdateStatusInput
	}{
		Ctx:   ctx,
		Actor: actor,
		Input: input,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, actor, input)
}

func (mock *surveyServiceMock) UpdateStatusCalls() []struct {
	Ctx   context.Context
	Actor string
	Input survey.UpdateStatusInput
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
