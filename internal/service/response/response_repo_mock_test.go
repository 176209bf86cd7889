package response

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var _ responseRepo = &responseRepoMock{}

type responseRepoMock struct {
	DeleteByEmailFunc          func(ctx context.Context, surveyID int64, email string) (int64, error)
	ExistsByEmailFunc          func(ctx context.Context, surveyID int64, email string) (bool, error)
	InsertBatchFunc            func(ctx context.Context, rows []domain.Response) (int, error)
	RecomputeResponseCountFunc func(ctx context.Context, surveyID int64) (int, error)

	calls struct {
		DeleteByEmail []struct {
			Ctx      context.Context
			SurveyID int64
			Email    string
		}
		ExistsByEmail []struct {
			Ctx      context.Context
			SurveyID int64
			Email    string
		}
		InsertBatch []struct {
			Ctx  context.Context
			Rows []domain.Response
		}
		RecomputeResponseCount []struct {
			Ctx      context.Context
			SurveyID int64
		}
	}
	lockDeleteByEmail          sync.RWMutex
	lockExistsByEmail          sync.RWMutex
	lockInsertBatch            sync.RWMutex
	lockRecomputeResponseCount sync.RWMutex
}

func (mock *responseRepoMock) DeleteByEmail(ctx context.Context, surveyID int64, email string) (int64, error) {
	if mock.DeleteByEmailFunc == nil {
		panic("responseRepoMock.DeleteByEmailFunc: method is nil but responseRepo.DeleteByEmail was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
		Email    string
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
		Email:    email,
	}
	mock.lockDeleteByEmail.Lock()
	mock.calls.DeleteByEmail = append(mock.calls.DeleteByEmail, callInfo)
	mock.lockDeleteByEmail.Unlock()
	return mock.DeleteByEmailFunc(ctx, surveyID, email)
}

func (mock *responseRepoMock) DeleteByEmailCalls() []struct {
	Ctx      context.Context
	SurveyID int64
	Email    string
} {
	mock.lockDeleteByEmail.RLock()
	calls := mock.calls.DeleteByEmail
	mock.lockDeleteByEmail.RUnlock()
	return calls
}

func (mock *responseRepoMock) ExistsByEmail(ctx context.Context, surveyID int64, email string) (bool, error) {
	if mock.ExistsByEmailFunc == nil {
		panic("responseRepoMock.ExistsByEmailFunc: method is nil but responseRepo.ExistsByEmail was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
		Email    string
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
		Email:    email,
	}
	mock.lockExistsByEmail.Lock()
	mock.calls.ExistsByEmail = append(mock.calls.ExistsByEmail, callInfo)
	mock.lockExistsByEmail.Unlock()
	return mock.ExistsByEmailFunc(ctx, surveyID, email)
}

func (mock *responseRepoMock) ExistsByEmailCalls() []struct {
	Ctx      context.Context
	SurveyID int64
	Email    string
} {
	mock.lockExistsByEmail.RLock()
	calls := mock.calls.ExistsByEmail
	mock.lockExistsByEmail.RUnlock()
	return calls
}

func (mock *responseRepoMock) InsertBatch(ctx context.Context, rows []domain.Response) (int, error) {
	if mock.InsertBatchFunc == nil {
		panic("responseRepoMock.InsertBatchFunc: method is nil but responseRepo.InsertBatch was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Rows []domain.Response
	}{
		Ctx:  ctx,
		Rows: rows,
	}
	mock.lockInsertBatch.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, callInfo)
	mock.lockInsertBatch.Unlock()
	return mock.InsertBatchFunc(ctx, rows)
}

func (mock *responseRepoMock) InsertBatchCalls() []struct {
	Ctx  context.Context
	Rows []domain.Response
} {
	mock.lockInsertBatch.RLock()
	calls := mock.calls.InsertBatch
	mock.lockInsertBatch.RUnlock()
	return calls
}

func (mock *responseRepoMock) RecomputeResponseCount(ctx context.Context, surveyID int64) (int, error) {
	if mock.RecomputeResponseCountFunc == nil {
		panic("responseRepoMock.RecomputeResponseCountFunc: method is nil but responseRepo.RecomputeResponseCount was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SurveyID int64
	}{
		Ctx:      ctx,
		SurveyID: surveyID,
	}
	mock.lockRecomputeResponseCount.Lock()
	mock.calls.RecomputeResponseCount = append(mock.calls.RecomputeResponseCount, callInfo)
	mock.lockRecomputeResponseCount.Unlock()
	return mock.RecomputeResponseCountFunc(ctx, surveyID)
}

func (mock *responseRepoMock) RecomputeResponseCountCalls() []struct {
	Ctx      context.Context
	SurveyID int64
} {
	mock.lockRecomputeResponseCount.RLock()
	calls := mock.calls.RecomputeResponseCount
	mock.lockRecomputeResponseCount.RUnlock()
	return calls
}
