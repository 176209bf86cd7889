package rest

import (
	"sync"
	"time"
)

var _ sessionIssuer = &sessionIssuerMock{}

type sessionIssuerMock struct {
	IssueFunc func(subject string) (string, time.Time, error)

	calls struct {
		Issue []struct {
			Subject string
		}
	}
	lockIssue sync.RWMutex
}

func (mock *sessionIssuerMock) Issue(subject string) (string, time.Time, error) {
	if mock.IssueFunc == nil {
		panic("sessionIssuerMock.IssueFunc: method is nil but sessionIssuer.Issue was just called")
	}
	callInfo := struct {
		Subject string
	}{
		Subject: subject,
	}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(subject)
}

func (mock *sessionIssuerMock) IssueCalls() []struct {
	Subject string
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}
