package repository

import (
	"context"
	"errors"
	"time"

	"biomedico/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("usuarios")
}

func (r *MongoUserRepo) CreateUser(user *models.Usuario) error {
	ctx := context.Background()
	if user.Password == "" {
		return errors.New("password cannot be empty")
	}
	if user.FechaRegistro.IsZero() {
		user.FechaRegistro = time.Now().UTC()
	}

	id, err := nextMongoID(ctx, r.collection())
	if err != nil {
		return err
	}
	user.ID = id

	_, err = r.collection().InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByIdentifier(identifier string) (*models.Usuario, error) {
	return r.findOne(bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": identifier},
	}})
}

func (r *MongoUserRepo) FindExisting(identity, email string) (*models.Usuario, error) {
	return r.findOne(bson.M{"$or": bson.A{
		bson.M{"username": identity},
		bson.M{"email": email},
	}})
}

func (r *MongoUserRepo) GetAllUsers() ([]*models.Usuario, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "fecha_registro", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*models.Usuario
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepo) findOne(filter bson.M) (*models.Usuario, error) {
	ctx := context.Background()
	user := &models.Usuario{}

	err := r.collection().FindOne(ctx, filter).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}
