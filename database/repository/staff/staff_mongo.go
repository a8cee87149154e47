package staffRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/database"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a MongoDB-backed StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoStaffRepo{
		coll: db.Collection("staff"),
	}
}

func (repo *mongoStaffRepo) FetchBookableResources(ctx context.Context, tenantID string) ([]models.ResourceRef, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tenantId": tenantID, "active": true}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff roster: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.StaffMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("error decoding staff roster: %w", err)
	}

	refs := make([]models.ResourceRef, 0, len(members))
	for _, m := range members {
		refs = append(refs, m.Ref())
	}
	return refs, nil
}
