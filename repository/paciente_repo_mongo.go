package repository

import (
	"context"
	"strconv"

	"biomedico/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPacienteRepo struct {
	DB *mongo.Client
}

func NewMongoPacienteRepo(db *mongo.Client) *MongoPacienteRepo {
	return &MongoPacienteRepo{DB: db}
}

func (r *MongoPacienteRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("pacientes")
}

func (r *MongoPacienteRepo) usuarios() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("usuarios")
}

func (r *MongoPacienteRepo) CreatePaciente(p *models.Paciente) error {
	ctx := context.Background()

	id, err := nextMongoID(ctx, r.collection())
	if err != nil {
		return err
	}
	p.ID = id

	_, err = r.collection().InsertOne(ctx, p)
	return err
}

func (r *MongoPacienteRepo) GetPacienteByID(id int64) (*models.Paciente, error) {
	ctx := context.Background()
	p := &models.Paciente{}

	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	r.attachOwner(ctx, p)
	return p, nil
}

func (r *MongoPacienteRepo) SearchPacientes(q string, ownerUserID *int64) ([]*models.PacienteResumen, error) {
	ctx := context.Background()

	filter := bson.M{}
	if ownerUserID != nil {
		filter["usuario_id"] = *ownerUserID
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(50)
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pacientes []*models.Paciente
	if err := cursor.All(ctx, &pacientes); err != nil {
		return nil, err
	}

	var result []*models.PacienteResumen
	for _, p := range pacientes {
		r.attachOwner(ctx, p)
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		result = append(result, &models.PacienteResumen{
			ID:               p.ID,
			Nombre:           p.NombreCompleto,
			Email:            p.Username,
			HistorialClinico: p.HistorialClinico,
			GrupoSanguineo:   p.GrupoSanguineo,
		})
	}
	return result, nil
}

func (r *MongoPacienteRepo) GetAllPacientes() ([]*models.Paciente, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pacientes []*models.Paciente
	if err := cursor.All(ctx, &pacientes); err != nil {
		return nil, err
	}
	for _, p := range pacientes {
		r.attachOwner(ctx, p)
	}
	return pacientes, nil
}

// attachOwner denormalizes the owning user onto the patient the way the
// Postgres join does. Best effort: a missing user leaves the fields nil.
func (r *MongoPacienteRepo) attachOwner(ctx context.Context, p *models.Paciente) {
	if p.UsuarioID == nil {
		return
	}
	var user models.Usuario
	if err := r.usuarios().FindOne(ctx, bson.M{"_id": *p.UsuarioID}).Decode(&user); err != nil {
		return
	}
	p.NombreCompleto = &user.NombreCompleto
	p.Username = &user.Username
	p.Email = user.Email
	p.TipoUsuario = &user.TipoUsuario
}

func matchesQuery(p *models.Paciente, q string) bool {
	if id, err := strconv.ParseInt(q, 10, 64); err == nil && id == p.ID {
		return true
	}
	for _, field := range []*string{p.NombreCompleto, p.Username, p.Email} {
		if field != nil && containsFold(*field, q) {
			return true
		}
	}
	return containsFold(p.HistorialClinico, q)
}
