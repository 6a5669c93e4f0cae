package storage

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/services/core/appointments"
	"creapar-service/internal/app/services/core/slots"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoStore struct {
	client       *mongo.Client
	slots        contracts.SlotRepository
	appointments contracts.AppointmentRepository
}

// NewMongoStore builds both repositories over one client. Close disconnects it.
func NewMongoStore(client *mongo.Client, dbName string) contracts.Store {
	return &mongoStore{
		client:       client,
		slots:        slots.NewSlotMongoRepository(client, dbName),
		appointments: appointments.NewAppointmentMongoRepository(client, dbName),
	}
}

func (s *mongoStore) Slots() contracts.SlotRepository {
	return s.slots
}

func (s *mongoStore) Appointments() contracts.AppointmentRepository {
	return s.appointments
}

func (s *mongoStore) EnsureIndexes(ctx context.Context) error {
	return ensureIndexes(ctx, s.slots, s.appointments)
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
