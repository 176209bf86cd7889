package notify

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sustainage/materiality-survey/internal/domain"
)

// Generic delivery reasons. Transport details stay in the logs.
const (
	reasonDeliveryFailed = "delivery failed"
	reasonCanceled       = "canceled"
)

// DeliveryResult is the outcome for one recipient.
type DeliveryResult struct {
	Email  string
	Sent   bool
	Reason string
}

// SendInvitations mails the distribution link of an active survey.
func (s *Service) SendInvitations(ctx context.Context, surveyID int64, recipients []Recipient) ([]DeliveryResult, error) {
	return s.send(ctx, domain.MessageInvitation, surveyID, recipients)
}

// SendReminders mails a deadline reminder for an active survey.
func (s *Service) SendReminders(ctx context.Context, surveyID int64, recipients []Recipient) ([]DeliveryResult, error) {
	return s.send(ctx, domain.MessageReminder, surveyID, recipients)
}

func (s *Service) send(ctx context.Context, kind domain.MessageKind, surveyID int64, recipients []Recipient) ([]DeliveryResult, error) {
	list, err := validateRecipients(recipients)
	if err != nil {
		return nil, err
	}

	sv, err := s.surveys.GetByID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("get survey: %w", err)
	}
	if err := sv.AcceptingResponses(s.now()); err != nil {
		return nil, err
	}

	base := messageData{
		SurveyName:  sv.Name,
		CompanyName: sv.CompanyName,
		Description: sv.Description,
		URL:         s.links.DistributionURL(sv.Token),
		Deadline:    sv.Deadline.Format(deadlineLayout),
	}

	messages := make([]domain.MailMessage, len(list))
	for i, r := range list {
		data := base
		data.Name = displayName(r)
		if messages[i], err = render(kind, r, data); err != nil {
			return nil, err
		}
	}

	results := make([]DeliveryResult, len(list))
	g := new(errgroup.Group)
	g.SetLimit(max(s.cfg.MaxConcurrency, 1))

	for i, msg := range messages {
		results[i].Email = msg.To
		g.Go(func() error {
			if ctx.Err() != nil {
				results[i].Reason = reasonCanceled
				return nil
			}
			if sendErr := s.mail.Send(ctx, msg); sendErr != nil {
				s.log.WarnContext(ctx, "message not delivered",
					slog.Int64("survey_id", sv.ID),
					slog.String("kind", kind.String()),
					slog.String("email", msg.To),
					slog.String("error", sendErr.Error()),
				)
				results[i].Reason = reasonDeliveryFailed
				return nil
			}
			results[i].Sent = true
			return nil
		})
	}
	// Delivery failures are per-recipient results; only a failing worker
	// fails the whole call.
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("send messages: %w", err)
	}

	sent := 0
	for _, r := range results {
		if r.Sent {
			sent++
		}
	}
	s.log.InfoContext(ctx, "messages sent",
		slog.Int64("survey_id", sv.ID),
		slog.String("kind", kind.String()),
		slog.Int("sent", sent),
		slog.Int("failed", len(results)-sent),
	)

	return results, nil
}
