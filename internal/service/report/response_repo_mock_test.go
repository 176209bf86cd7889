package report

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var _ responseRepo = &responseRepoMock{}

type responseRepoMock struct {
	CountStakeholdersFunc func(ctx context.Context, surveyID int64) (int64, error)
	ListBySurveyFunc      func(ctx context.Context, surveyID int64) ([]domain.Response, error)
	ListCommentsFunc      func(ctx context.Context, surveyID int64) ([]domain.Comment, error)
	TopicAggregatesFunc   func(ctx context.Context, surveyID int64) ([]domain.TopicAggregate, error)

	calls struct {
		CountStakeholders []struct {
			Ctx      context.Context
			SurveyID int64
		}
		ListBySurvey []struct {
			Ctx      context.Context
			SurveyID int64
		}
		ListComments []struct {
			Ctx      context.Context
			SurveyID int64
		}
		TopicAggregates []struct {
			Ctx      context.Context
			SurveyID int64
		}
	}
	lockCountStakeholders sync.RWMutex
	lockListBySurvey      sync.RWMutex
	lockListComments      sync.RWMutex
	lockTopicAggregates   sync.RWMutex
}

func (mock *responseRepoMock) CountStakeholders(ctx context.Context, surveyID int64) (int64, error) {
	if mock.CountStakeholdersFunc == nil {
		panic("responseRepoMock.CountStakeholdersFunc: method is nil but responseRepo.CountStakeholders was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
	}
	mock.lockCountStakeholders.Lock()
	mock.calls.CountStakeholders = append(mock.calls.CountStakeholders, callInfo)
	mock.lockCountStakeholders.Unlock()
	return mock.CountStakeholdersFunc(ctx, surveyID)
}

func (mock *responseRepoMock) CountStakeholdersCalls() []struct {
	Ctx      context.Context
	SurveyID int64
} {
	mock.lockCountStakeholders.RLock()
	calls := mock.calls.CountStakeholders
	mock.lockCountStakeholders.RUnlock()
	return calls
}

func (mock *responseRepoMock) ListBySurvey(ctx context.Context, surveyID int64) ([]domain.Response, error) {
	if mock.ListBySurveyFunc == nil {
		panic("responseRepoMock.ListBySurveyFunc: method is nil but responseRepo.ListBySurvey was just called")
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

func (mock *responseRepoMock) ListBySurveyCalls() []struct {
	Ctx      context.Context
	SurveyID int64
} {
	mock.lockListBySurvey.RLock()
	calls := mock.calls.ListBySurvey
	mock.lockListBySurvey.RUnlock()
	return calls
}

func (mock *responseRepoMock) ListComments(ctx context.Context, surveyID int64) ([]domain.Comment, error) {
	if mock.ListCommentsFunc == nil {
		panic("responseRepoMock.ListCommentsFunc: method is nil but responseRepo.ListComments was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
	}
	mock.lockListComments.Lock()
	mock.calls.ListComments = append(mock.calls.ListComments, callInfo)
	mock.lockListComments.Unlock()
	return mock.ListCommentsFunc(ctx, surveyID)
}

func (mock *responseRepoMock) ListCommentsCalls() []struct {
	Ctx      context.Context
	SurveyID int64
} {
	mock.lockListComments.RLock()
	calls := mock.calls.ListComments
	mock.lockListComments.RUnlock()
	return calls
}

func (mock *responseRepoMock) TopicAggregates(ctx context.Context, surveyID int64) ([]domain.TopicAggregate, error) {
	if mock.TopicAggregatesFunc == nil {
		panic("responseRepoMock.TopicAggregatesFunc: method is nil but responseRepo.TopicAggregates was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
	}
	mock.lockTopicAggregates.Lock()
	mock.calls.TopicAggregates = append(mock.calls.TopicAggregates, callInfo)
	mock.lockTopicAggregates.Unlock()
	return mock.TopicAggregatesFunc(ctx, surveyID)
}

func (mock *responseRepoMock) TopicAggregatesCalls() []struct {
	Ctx      context.Context
	SurveyID int64
} {
	mock.lockTopicAggregates.RLock()
	calls := mock.calls.TopicAggregates
	mock.lockTopicAggregates.RUnlock()
	return calls
}
