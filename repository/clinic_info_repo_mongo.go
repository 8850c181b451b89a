package repository

import (
	"context"
	"time"

	"biomedico/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoClinicInfoRepo struct {
	DB *mongo.Client
}

func NewMongoClinicInfoRepo(db *mongo.Client) *MongoClinicInfoRepo {
	return &MongoClinicInfoRepo{DB: db}
}

func (r *MongoClinicInfoRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("clinic_info")
}

func (r *MongoClinicInfoRepo) SaveClinicInfo(info *models.ClinicInfo) error {
	ctx := context.Background()
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now().UTC()
	}

	id, err := nextMongoID(ctx, r.collection())
	if err != nil {
		return err
	}
	info.ID = id

	_, err = r.collection().InsertOne(ctx, info)
	return err
}

func (r *MongoClinicInfoRepo) GetClinicInfo() (*models.ClinicInfo, error) {
	ctx := context.Background()
	info := &models.ClinicInfo{}

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := r.collection().FindOne(ctx, bson.M{}, opts).Decode(info)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return info, nil
}
