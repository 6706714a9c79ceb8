package dao

import (
	"context"

	"github.com/google/uuid"
)

type DeliveryDao interface {
	//Create inserts one audit row for a send attempt and returns its id
	Create(ctx context.Context, alumniId, channel, status string, providerResponse *string) (string, error)
}

func NewDeliveryDao(db Db) DeliveryDao {
	return &deliveryDao{db: db}
}

type deliveryDao struct {
	db Db
}

const insertDelivery = `
	INSERT INTO deliveries (id, alumni_id, channel, provider_response, status, created_at)
	VALUES ($1, $2, $3, $4, $5, now())
`

// Create never updates or deletes; deliveries is insert-only from this
// service. created_at is assigned by the server inside the statement so
// ordering does not depend on this process's clock.
func (d deliveryDao) Create(ctx context.Context, alumniId, channel, status string, providerResponse *string) (string, error) {
	id := uuid.NewString()

	_, err := d.db.Exec(ctx, insertDelivery, id, alumniId, channel, providerResponse, status)
	if err != nil {
		return "", err
	}

	return id, nil
}
