package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/domain"
)

const notificationsCollection = "notifications"

// MongoNotificationRepository persists notification records in MongoDB.
type MongoNotificationRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{
		collection: db.Collection(notificationsCollection),
		now:        time.Now,
	}
}

func (r *MongoNotificationRepository) Create(ctx context.Context, input domain.CreateNotificationInput) (*domain.Notification, error) {
	notification := &domain.Notification{
		ID:            primitive.NewObjectID().Hex(),
		UserID:        input.UserID,
		Type:          input.Type,
		Title:         input.Title,
		Message:       input.Message,
		AppointmentID: input.AppointmentID,
		Read:          false,
		CreatedAt:     r.now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, notification); err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	return notification, nil
}

func (r *MongoNotificationRepository) FindByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *MongoNotificationRepository) FindUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return r.find(ctx, bson.M{"userId": userID, "read": false})
}

func (r *MongoNotificationRepository) find(ctx context.Context, filter bson.M) ([]domain.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := []domain.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return notifications, nil
}

// MarkAsRead flips the read flag on a notification owned by userID. The
// ownership check is part of the filter so a foreign id reports NotFound.
func (r *MongoNotificationRepository) MarkAsRead(ctx context.Context, id, userID string) (*domain.Notification, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"read": true}},
		opts,
	)

	var notification domain.Notification
	if err := result.Decode(&notification); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return &notification, nil
}

func (r *MongoNotificationRepository) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"userId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *MongoNotificationRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

var _ port.NotificationRepository = (*MongoNotificationRepository)(nil)
