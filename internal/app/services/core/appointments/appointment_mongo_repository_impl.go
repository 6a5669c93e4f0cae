package appointments

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/models"
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return repo.findOne(ctx, bson.M{constvars.MongoFieldID: appointmentID})
}

func (repo *AppointmentMongoRepository) FindActiveBySlot(ctx context.Context, slotID string) (*models.Appointment, error) {
	return repo.findOne(ctx, bson.M{
		constvars.MongoFieldSlotID: slotID,
		constvars.MongoFieldStatus: constvars.AppointmentStatusConfirmed,
	})
}

func (repo *AppointmentMongoRepository) FindBlockingBySlot(ctx context.Context, slotID string) (*models.Appointment, error) {
	return repo.findOne(ctx, bson.M{
		constvars.MongoFieldSlotID: slotID,
		constvars.MongoFieldStatus: bson.M{"$ne": constvars.AppointmentStatusCancelled},
	})
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context, date string) ([]models.Appointment, error) {
	filter := bson.M{}
	if date != "" {
		filter[constvars.MongoFieldDate] = date
	}
	findOptions := options.Find().SetSort(bson.D{
		{Key: constvars.MongoFieldTime, Value: 1},
		{Key: constvars.MongoFieldDate, Value: 1},
	})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) error {
	_, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlotAlreadyBooked(appointment.SlotID)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) SetStatus(ctx context.Context, appointmentID, status string) error {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{constvars.MongoFieldID: appointmentID},
		bson.M{"$set": bson.M{constvars.MongoFieldStatus: status}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotFound(appointmentID)
	}
	return nil
}

// CompareAndSetStatus filters on the expected status so that only one of
// several concurrent transitions matches.
func (repo *AppointmentMongoRepository) CompareAndSetStatus(ctx context.Context, appointmentID, expected, status string) (bool, error) {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{
			constvars.MongoFieldID:     appointmentID,
			constvars.MongoFieldStatus: expected,
		},
		bson.M{"$set": bson.M{constvars.MongoFieldStatus: status}},
	)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 1 {
		return true, nil
	}

	appointment, err := repo.FindByID(ctx, appointmentID)
	if err != nil {
		return false, err
	}
	if appointment == nil {
		return false, exceptions.ErrAppointmentNotFound(appointmentID)
	}
	return false, nil
}

// EnsureIndexes creates the lookup indexes. The partial unique index on
// slot_id admits at most one confirmed appointment per slot.
func (repo *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: constvars.MongoFieldDate, Value: 1},
				{Key: constvars.MongoFieldTime, Value: 1},
			},
		},
		{
			Keys:    bson.D{{Key: constvars.MongoFieldID, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: constvars.MongoFieldSlotID, Value: 1},
				{Key: constvars.MongoFieldStatus, Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: constvars.MongoFieldSlotID, Value: 1}},
			Options: options.Index().
				SetName(constvars.MongoIndexConfirmedSlot).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{constvars.MongoFieldStatus: constvars.AppointmentStatusConfirmed}),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionAppointments)
	}
	return nil
}

func (repo *AppointmentMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Appointment, error) {
	var appointment models.Appointment
	err := repo.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}
