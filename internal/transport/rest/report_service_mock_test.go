package rest

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
	"github.com/sustainage/materiality-survey/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	AuditTrailFunc       func(ctx context.Context, surveyID int64, limit int) ([]domain.AuditRecord, error)
	CommentsFunc         func(ctx context.Context, surveyID int64) ([]domain.Comment, error)
	GroupedResponsesFunc func(ctx context.Context, ref report.SurveyRef) (*report.GroupedResult, error)
	SummaryFunc          func(ctx context.Context, surveyID int64) (*domain.Summary, error)

	calls struct {
		AuditTrail []struct {
			Ctx      context.Context
			SurveyID int64
			Limit    int
		}
		Comments []struct {
			Ctx      context.Context
			SurveyID int64
		}
		GroupedResponses []struct {
			Ctx context.Context
			Ref report.SurveyRef
		}
		Summary []struct {
			Ctx      context.Context
			SurveyID int64
		}
	}
	lockAuditTrail       sync.RWMutex
	lockComments         sync.RWMutex
	lockGroupedResponses sync.RWMutex
	lockSummary          sync.RWMutex
}

func (mock *reportServiceMock) AuditTrail(ctx context.Context, surveyID int64, limit int) ([]domain.AuditRecord, error) {
	if mock.AuditTrailFunc == nil {
		panic("reportServiceMock.AuditTrailFunc: method is nil but reportService.AuditTrail was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
		Limit    int
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
		Limit:    limit,
	}
	mock.lockAuditTrail.Lock()
	mock.calls.AuditTrail = append(mock.calls.AuditTrail, callInfo)
	mock.lockAuditTrail.Unlock()
	return mock.AuditTrailFunc(ctx, surveyID, limit)
}

func (mock *reportServiceMock) AuditTrailCalls() []struct {
	Ctx      context.Context
	SurveyID int64
	Limit    int
} {
	mock.lockAuditTrail.RLock()
	calls := mock.calls.AuditTrail
	mock.lockAuditTrail.RUnlock()
	return calls
}

func (mock *reportServiceMock) Comments(ctx context.Context, surveyID int64) ([]domain.Comment, error) {
	if mock.CommentsFunc == nil {
		panic("reportServiceMock.CommentsFunc: method is nil but reportService.Comments was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
	}
	mock.lockComments.Lock()
	mock.calls.Comments = append(mock.calls.Comments, callInfo)
	mock.lockComments.Unlock()
	return mock.CommentsFunc(ctx, surveyID)
}

func (mock *reportServiceMock) CommentsCalls() []struct {
	Ctx      context.Context
	SurveyID int64
} {
	mock.lockComments.RLock()
	calls := mock.calls.Comments
	mock.lockComments.RUnlock()
	return calls
}

func (mock *reportServiceMock) GroupedResponses(ctx context.Context, ref report.SurveyRef) (*report.GroupedResult, error) {
	if mock.GroupedResponsesFunc == nil {
		panic("reportServiceMock.GroupedResponsesFunc: method is nil but reportService.GroupedResponses was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref report.SurveyRef
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockGroupedResponses.Lock()
	mock.calls.GroupedResponses = append(mock.calls.GroupedResponses, callInfo)
	mock.lockGroupedResponses.Unlock()
	return mock.GroupedResponsesFunc(ctx, ref)
}

func (mock *reportServiceMock) GroupedResponsesCalls() []struct {
	Ctx context.Context
	Ref report.SurveyRef
} {
	mock.lockGroupedResponses.RLock()
	calls := mock.calls.GroupedResponses
	mock.lockGroupedResponses.RUnlock()
	return calls
}

func (mock *reportServiceMock) Summary(ctx context.Context, surveyID int64) (*domain.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("reportServiceMock.SummaryFunc: method is nil but reportService.Summary was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
	}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, surveyID)
}

func (mock *reportServiceMock) SummaryCalls() []struct {
	Ctx      context.Context
	SurveyID int64
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
