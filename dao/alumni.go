package dao

import (
	"context"
	"time"

	"github.com/Watergold12/alumni-notifier/model"
	"go.uber.org/zap"
)

type AlumniDao interface {
	//GetTodaysRecipients returns consenting alumni whose birthdate falls on today's month and day
	GetTodaysRecipients(ctx context.Context, today time.Time) ([]model.Person, error)
}

func NewAlumniDao(db Db) AlumniDao {
	return &alumniDao{db: db}
}

type alumniDao struct {
	db Db
}

const selectCandidates = `
	SELECT id, first_name, birthdate, consent
	FROM alumni
	WHERE consent = 1
	  AND birthdate IS NOT NULL
`

func (a alumniDao) GetTodaysRecipients(ctx context.Context, today time.Time) ([]model.Person, error) {
	rows, err := a.db.Query(ctx, selectCandidates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipients []model.Person
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.Id, &p.FirstName, &p.Birthdate, &p.Consent); err != nil {
			return nil, err
		}

		//birthdate matching happens here, not in SQL: unrecognized encodings
		//must be skipped, never guessed at
		if p.Birthdate == nil {
			continue
		}
		if !model.ParseBirthdate(*p.Birthdate).MatchesMonthDay(today) {
			continue
		}

		recipients = append(recipients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	zap.L().Debug("Selected today's recipients", zap.Int("count", len(recipients)))

	return recipients, nil
}
