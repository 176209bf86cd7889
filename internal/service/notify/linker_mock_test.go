package notify

import (
	"sync"
)

var _ linker = &linkerMock{}

type linkerMock struct {
	DistributionURLFunc func(token string) string

	calls struct {
		DistributionURL []struct {
			Token string
		}
	}
	lockDistributionURL sync.RWMutex
}

func (mock *linkerMock) DistributionURL(token string) string {
	if mock.DistributionURLFunc == nil {
		panic("linkerMock.DistributionURLFunc: method is nil but linker.DistributionURL was just called")
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

func (mock *linkerMock) DistributionURLCalls() []struct {
	Token string
} {
	mock.lockDistributionURL.RLock()
	calls := mock.calls.DistributionURL
	mock.lockDistributionURL.RUnlock()
	return calls
}
