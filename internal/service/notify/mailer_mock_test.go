package notify

import (
	"context"
	"sync"

	"github.com/sustainage/materiality-survey/internal/domain"
)

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendFunc func(ctx context.Context, msg domain.MailMessage) error

	calls struct {
		Send []struct {
			Ctx context.Context
			Msg domain.MailMessage
		}
	}
	lockSend sync.RWMutex
}

func (mock *mailerMock) Send(ctx context.Context, msg domain.MailMessage) error {
	if mock.SendFunc == nil {
		panic("mailerMock.SendFunc: method is nil but mailer.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg domain.MailMessage
	}{
		Ctx: ctx,
		Msg: msg,
	}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, msg)
}

func (mock *mailerMock) SendCalls() []struct {
	Ctx context.Context
	Msg domain.MailMessage
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
