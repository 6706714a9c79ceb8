package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/Watergold12/alumni-notifier/model"
	"github.com/stretchr/testify/require"
)

func TestDeliveryCreate(t *testing.T) {
	db := &mockDb{}

	id, err := NewDeliveryDao(db).Create(context.Background(), "a1", model.TELEGRAM, model.SENT, strPtr(`{"ok":true}`))

	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Len(t, db.execArgs, 5)
	require.Equal(t, id, db.execArgs[0])
	require.Equal(t, "a1", db.execArgs[1])
	require.Equal(t, model.TELEGRAM, db.execArgs[2])
	require.Equal(t, model.SENT, db.execArgs[4])
}

func TestDeliveryCreateUniqueIds(t *testing.T) {
	db := &mockDb{}
	deliveryDao := NewDeliveryDao(db)

	id1, err := deliveryDao.Create(context.Background(), "a1", model.TELEGRAM, model.FAILED, nil)
	require.NoError(t, err)
	id2, err := deliveryDao.Create(context.Background(), "a1", model.TELEGRAM, model.FAILED, nil)
	require.NoError(t, err)

	require.NotEqual(t, id1, id2)
}

func TestDeliveryCreateError(t *testing.T) {
	db := &mockDb{execErr: errors.New("insert failed")}

	id, err := NewDeliveryDao(db).Create(context.Background(), "a1", model.TELEGRAM, model.FAILED, nil)

	require.Error(t, err)
	require.Empty(t, id)
}
