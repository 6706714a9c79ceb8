package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Watergold12/alumni-notifier/dao"
	"github.com/Watergold12/alumni-notifier/model"
	"github.com/Watergold12/alumni-notifier/service/dto"
	"github.com/Watergold12/alumni-notifier/telegram"
	"go.uber.org/zap"
)

const fallbackName = "Alumnus"

type Service interface {
	//Run executes one full send pass over today's recipients
	Run(ctx context.Context) (dto.Summary, error)
	//DryRun previews today's greetings without sending or recording anything
	DryRun(ctx context.Context) (dto.DryRun, error)
	//RunOnSchedule blocks, running a full pass daily at runAt (HH:MM, local time)
	RunOnSchedule(runAt string)
}

type service struct {
	notifier    telegram.Notifier
	alumniDao   dao.AlumniDao
	deliveryDao dao.DeliveryDao
}

func NewService(notifier telegram.Notifier, alumniDao dao.AlumniDao, deliveryDao dao.DeliveryDao) Service {
	return &service{
		notifier:    notifier,
		alumniDao:   alumniDao,
		deliveryDao: deliveryDao,
	}
}

// BuildMessage renders the greeting for one person. Pure, no failure path;
// a missing first name falls back to a generic label.
func BuildMessage(person model.Person) string {
	name := fallbackName
	if person.FirstName != nil {
		name = *person.FirstName
	}
	return fmt.Sprintf("🎂 Happy Birthday %s! 🎉\nWarm wishes from KPRIET Alumni.", name)
}

// todaysRecipients absorbs store unavailability: an unbound handle or a
// failing query degrades to an empty set with a warning, so entry points
// keep answering well-formed responses.
func (s service) todaysRecipients(ctx context.Context) []model.Person {
	if s.alumniDao == nil {
		zap.L().Warn("Alumni store is not bound, check DATABASE_URL")
		return nil
	}

	recipients, err := s.alumniDao.GetTodaysRecipients(ctx, time.Now())
	if err != nil {
		zap.L().Warn("Error fetching today's recipients", zap.Error(err))
		return nil
	}

	return recipients
}

func (s service) Run(ctx context.Context) (dto.Summary, error) {
	recipients := s.todaysRecipients(ctx)
	if len(recipients) == 0 {
		return dto.Summary{Sent: 0, Details: []dto.Detail{}}, nil
	}

	details := make([]dto.Detail, 0, len(recipients))
	for _, p := range recipients {
		msg := BuildMessage(p)
		detail := dto.Detail{Id: p.Id, Name: p.FirstName}

		res, err := s.notifier.Send(ctx, msg)
		if err != nil {
			//config and transport errors are isolated per recipient,
			//one unreachable network never aborts the batch
			detail.Status = model.FAILED
			detail.Error = err.Error()
			s.recordDelivery(ctx, p.Id, model.FAILED, err.Error())
		} else {
			detail.Status = model.FAILED
			if res.Ok {
				detail.Status = model.SENT
			}
			detail.Raw = res.Body
			s.recordDelivery(ctx, p.Id, detail.Status, res.Body)
		}

		details = append(details, detail)
	}

	return dto.Summary{Sent: len(recipients), Details: details}, nil
}

// recordDelivery writes the audit row for one attempt. A failed write is
// logged and swallowed so the remaining recipients still get processed.
func (s service) recordDelivery(ctx context.Context, alumniId, status, providerResponse string) {
	_, err := s.deliveryDao.Create(ctx, alumniId, model.TELEGRAM, status, &providerResponse)
	if err != nil {
		zap.L().Error("Error recording delivery",
			zap.String("alumni_id", alumniId),
			zap.String("status", status),
			zap.Error(err))
	}
}

func (s service) DryRun(ctx context.Context) (dto.DryRun, error) {
	recipients := s.todaysRecipients(ctx)

	previews := make([]dto.Preview, 0, len(recipients))
	for _, p := range recipients {
		previews = append(previews, dto.Preview{Id: p.Id, Name: p.FirstName, Message: BuildMessage(p)})
	}

	return dto.DryRun{Count: len(previews), Previews: previews}, nil
}
