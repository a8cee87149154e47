package hoursRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/database"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoWorkingHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkingHoursRepo constructs a MongoDB-backed WorkingHoursRepository.
func NewMongoWorkingHoursRepo() WorkingHoursRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoWorkingHoursRepo{
		coll: db.Collection("working_hours"),
	}
}

func (repo *mongoWorkingHoursRepo) FetchForWeekday(ctx context.Context, tenantID string, weekday int) (*models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var wh models.WorkingHours
	err := repo.coll.FindOne(ctx, bson.M{"tenantId": tenantID, "weekday": weekday}).Decode(&wh)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// No record means the business is closed that day.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch working hours: %w", err)
	}
	return &wh, nil
}
