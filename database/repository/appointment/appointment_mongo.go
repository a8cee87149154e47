package appointmentRepo

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

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB-backed AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

func (repo *mongoAppointmentRepo) FetchForDay(ctx context.Context, tenantID string, resource models.ResourceRef, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenantId":      tenantID,
		"date":          date,
		"resource.kind": resource.Kind,
		"resource.id":   resource.ID,
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (repo *mongoAppointmentRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.coll.FindOne(ctx, bson.M{"tenantId": tenantID, "id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (repo *mongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (repo *mongoAppointmentRepo) Cancel(ctx context.Context, tenantID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"tenantId": tenantID, "id": id}
	update := bson.M{"$set": bson.M{
		"status":    models.AppointmentCancelled,
		"updatedAt": time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}
