package survey

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	AddTopicsFunc    func(ctx context.Context, surveyID int64, topics []domain.Topic) (int, []domain.TopicRejection, error)
	CreateAllFunc    func(ctx context.Context, surveyID int64, topics []domain.Topic) error
	ListBySurveyFunc func(ctx context.Context, surveyID int64) ([]domain.Topic, error)

	calls struct {
		AddTopics []struct {
			Ctx      context.Context
			SurveyID int64
			Topics   []domain.Topic
		}
		CreateAll []struct {
			Ctx      context.Context
			SurveyID int64
			Topics   []domain.Topic
		}
		ListBySurvey []struct {
			Ctx      context.Context
			SurveyID int64
		}
	}
	lockAddTopics    sync.RWMutex
	lockCreateAll    sync.RWMutex
	lockListBySurvey sync.RWMutex
}

func (mock *topicRepoMock) AddTopics(ctx context.Context, surveyID int64, topics []domain.Topic) (int, []domain.TopicRejection, error) {
	if mock.AddTopicsFunc == nil {
		panic("topicRepoMock.AddTopicsFunc: method is nil but topicRepo.AddTopics was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
		Topics   []domain.Topic
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
		Topics:   topics,
	}
	mock.lockAddTopics.Lock()
	mock.calls.AddTopics = append(mock.calls.AddTopics, callInfo)
	mock.lockAddTopics.Unlock()
	return mock.AddTopicsFunc(ctx, surveyID, topics)
}

func (mock *topicRepoMock) AddTopicsCalls() []struct {
	Ctx      context.Context
	SurveyID int64
	Topics   []domain.Topic
} {
	mock.lockAddTopics.RLock()
	calls := mock.calls.AddTopics
	mock.lockAddTopics.RUnlock()
	return calls
}

func (mock *topicRepoMock) CreateAll(ctx context.Context, surveyID int64, topics []domain.Topic) error {
	if mock.CreateAllFunc == nil {
		panic("topicRepoMock.CreateAllFunc: method is nil but topicRepo.CreateAll was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
		Topics   []domain.Topic
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
		Topics:   topics,
	}
	mock.lockCreateAll.Lock()
	mock.calls.CreateAll = append(mock.calls.CreateAll, callInfo)
	mock.lockCreateAll.Unlock()
	return mock.CreateAllFunc(ctx, surveyID, topics)
}

func (mock *topicRepoMock) CreateAllCalls() []struct {
	Ctx      context.Context
	SurveyID int64
	Topics   []domain.Topic
} {
	mock.lockCreateAll.RLock()
	calls := mock.calls.CreateAll
	mock.lockCreateAll.RUnlock()
	return calls
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
