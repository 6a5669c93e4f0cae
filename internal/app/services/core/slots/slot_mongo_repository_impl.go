package slots

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

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailableSlots),
	}
}

func (repo *SlotMongoRepository) FindByID(ctx context.Context, slotID string) (*models.Slot, error) {
	return repo.findOne(ctx, bson.M{constvars.MongoFieldID: slotID})
}

func (repo *SlotMongoRepository) FindByDateTime(ctx context.Context, date, time string) (*models.Slot, error) {
	return repo.findOne(ctx, bson.M{
		constvars.MongoFieldDate: date,
		constvars.MongoFieldTime: time,
	})
}

func (repo *SlotMongoRepository) FindAvailable(ctx context.Context, date string) ([]models.Slot, error) {
	filter := bson.M{constvars.MongoFieldIsAvailable: true}
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

	slots := make([]models.Slot, 0)
	err = cursor.All(ctx, &slots)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (repo *SlotMongoRepository) Insert(ctx context.Context, slot *models.Slot) error {
	_, err := repo.Collection.InsertOne(ctx, slot)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlotAlreadyExists(slot.Date, slot.Time)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *SlotMongoRepository) SetAvailability(ctx context.Context, slotID string, isAvailable bool) error {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{constvars.MongoFieldID: slotID},
		bson.M{"$set": bson.M{constvars.MongoFieldIsAvailable: isAvailable}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrSlotNotFound(slotID)
	}
	return nil
}

func (repo *SlotMongoRepository) CompareAndSetAvailability(ctx context.Context, slotID string, expected, value bool) (bool, error) {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{
			constvars.MongoFieldID:          slotID,
			constvars.MongoFieldIsAvailable: expected,
		},
		bson.M{"$set": bson.M{constvars.MongoFieldIsAvailable: value}},
	)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (repo *SlotMongoRepository) Delete(ctx context.Context, slotID string) error {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{
		constvars.MongoFieldID:          slotID,
		constvars.MongoFieldIsAvailable: true,
	})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 1 {
		return nil
	}

	slot, err := repo.FindByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return exceptions.ErrSlotNotFound(slotID)
	}
	return exceptions.ErrSlotHasBookings(slotID)
}

// EnsureIndexes creates the lookup indexes. The (date, time) index is unique
// so two concurrent creations of the same slot cannot both land.
func (repo *SlotMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: constvars.MongoFieldDate, Value: 1},
				{Key: constvars.MongoFieldTime, Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: constvars.MongoFieldID, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: constvars.MongoFieldIsAvailable, Value: 1},
				{Key: constvars.MongoFieldDate, Value: 1},
			},
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionAvailableSlots)
	}
	return nil
}

func (repo *SlotMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Slot, error) {
	var slot models.Slot
	err := repo.Collection.FindOne(ctx, filter).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}
