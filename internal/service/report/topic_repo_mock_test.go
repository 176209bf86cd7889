package report

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	ListBySurveyFunc func(ctx context.Context, surveyID int64) ([]domain.Topic, error)

	calls struct {
		ListBySurvey []struct {
			Ctx      context.Context
			SurveyID int64
		}
	}
	lockListBySurvey sync.RWMutex
}

func (mock *topicRepoMock) ListBySurvey(ctx context.Context, surveyID int64) ([]domain.Topic, error) {
	if mock.ListBySurveyFunc == nil {
		panic("topicRepoMock.ListBySurveyFunc: method is nil but topicRepo.ListBySurvey was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
	}
	mock.lockListBySurvey.Lock()
	mock.calls.ListBySurvey = append(mock.calls.ListBySurvey, callInfo)
	mock.lockListBySurvey.Unlock()
	return mock.ListBySurveyFunc(ctx, surveyID)
}

func (mock *topicRepoMock) ListBySurveyCalls() []struct {
	Ctx      context.Context
	SurveyID int64
} {
	mock.lockListBySurvey.RLock()
	calls := mock.calls.ListBySurvey
	mock.lockListBySurvey.RUnlock()
	return calls
}
