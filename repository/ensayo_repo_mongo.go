package repository

import (
	"context"
	"time"

	"biomedico/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoEnsayoRepo struct {
	DB *mongo.Client
}

func NewMongoEnsayoRepo(db *mongo.Client) *MongoEnsayoRepo {
	return &MongoEnsayoRepo{DB: db}
}

func (r *MongoEnsayoRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("ensayos_clinicos")
}

func (r *MongoEnsayoRepo) usuarios() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("usuarios")
}

func (r *MongoEnsayoRepo) CreateEnsayo(e *models.EnsayoClinico) error {
	ctx := context.Background()
	if e.Estado == "" {
		e.Estado = "activo"
	}
	if e.CreadoEn.IsZero() {
		e.CreadoEn = time.Now().UTC()
	}

	id, err := nextMongoID(ctx, r.collection())
	if err != nil {
		return err
	}
	e.ID = id

	_, err = r.collection().InsertOne(ctx, e)
	return err
}

func (r *MongoEnsayoRepo) GetAllEnsayos() ([]*models.EnsayoClinico, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "creado_en", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ensayos []*models.EnsayoClinico
	if err := cursor.All(ctx, &ensayos); err != nil {
		return nil, err
	}

	for _, e := range ensayos {
		if e.UsuarioID == nil {
			continue
		}
		var user models.Usuario
		if err := r.usuarios().FindOne(ctx, bson.M{"_id": *e.UsuarioID}).Decode(&user); err != nil {
			continue
		}
		e.CreadoPor = &user.Username
		e.NombreCompleto = &user.NombreCompleto
	}
	return ensayos, nil
}

func (r *MongoEnsayoRepo) UpdateEnsayo(e *models.EnsayoClinico) error {
	ctx := context.Background()
	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": e.ID}, bson.M{"$set": bson.M{
		"titulo":       e.Titulo,
		"description":  e.Description,
		"fecha_inicio": e.FechaInicio,
		"fecha_fin":    e.FechaFin,
		"estado":       e.Estado,
	}})
	return err
}

func (r *MongoEnsayoRepo) DeleteEnsayo(id int64) error {
	ctx := context.Background()
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
