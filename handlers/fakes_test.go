package handlers

import (
	"biomedico/models"
)

type fakeUserRepo struct {
	users   []*models.Usuario
	created []*models.Usuario
}

func (f *fakeUserRepo) CreateUser(user *models.Usuario) error {
	user.ID = int64(len(f.users) + len(f.created) + 1)
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) GetUserByIdentifier(identifier string) (*models.Usuario, error) {
	for _, u := range f.users {
		if u.Username == identifier || (u.Email != nil && *u.Email == identifier) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindExisting(identity, email string) (*models.Usuario, error) {
	for _, u := range f.users {
		if u.Username == identity {
			return u, nil
		}
		if email != "" && u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAllUsers() ([]*models.Usuario, error) {
	return f.users, nil
}

type fakePacienteRepo struct {
	pacientes []*models.Paciente
	created   []*models.Paciente
	lastQuery string
	lastOwner *int64
}

func (f *fakePacienteRepo) CreatePaciente(p *models.Paciente) error {
	p.ID = int64(len(f.pacientes) + len(f.created) + 1)
	f.created = append(f.created, p)
	return nil
}

func (f *fakePacienteRepo) GetPacienteByID(id int64) (*models.Paciente, error) {
	for _, p := range f.pacientes {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePacienteRepo) SearchPacientes(q string, ownerUserID *int64) ([]*models.PacienteResumen, error) {
	f.lastQuery = q
	f.lastOwner = ownerUserID

	var out []*models.PacienteResumen
	for _, p := range f.pacientes {
		if ownerUserID != nil && (p.UsuarioID == nil || *p.UsuarioID != *ownerUserID) {
			continue
		}
		out = append(out, &models.PacienteResumen{
			ID:               p.ID,
			Nombre:           p.NombreCompleto,
			Email:            p.Email,
			HistorialClinico: p.HistorialClinico,
			GrupoSanguineo:   p.GrupoSanguineo,
		})
	}
	return out, nil
}

func (f *fakePacienteRepo) GetAllPacientes() ([]*models.Paciente, error) {
	return f.pacientes, nil
}

type fakeEnsayoRepo struct {
	ensayos []*models.EnsayoClinico
	deleted []int64
	updated []*models.EnsayoClinico
}

func (f *fakeEnsayoRepo) CreateEnsayo(e *models.EnsayoClinico) error {
	e.ID = int64(len(f.ensayos) + 1)
	f.ensayos = append(f.ensayos, e)
	return nil
}

func (f *fakeEnsayoRepo) GetAllEnsayos() ([]*models.EnsayoClinico, error) {
	return f.ensayos, nil
}

func (f *fakeEnsayoRepo) UpdateEnsayo(e *models.EnsayoClinico) error {
	f.updated = append(f.updated, e)
	return nil
}

func (f *fakeEnsayoRepo) DeleteEnsayo(id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}
