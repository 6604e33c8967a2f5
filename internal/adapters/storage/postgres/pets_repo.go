package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"petvizor/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// GetPublicByID trae la ficha pública con el dueño unido en una sola consulta.
func (r *PetsRepo) GetPublicByID(ctx context.Context, id string) (pets.PublicPet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.PublicPet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			p.id, p.name, p.species, p.breed,
			p.birth_date, p.weight, p.photo_url, p.lost_comment,
			p.created_at,
			pr.full_name, pr.phone
		FROM pets p
		LEFT JOIN profiles pr ON pr.id = p.owner_id
		WHERE p.id = $1
	`, id)

	var p pets.PublicPet
	var (
		species, breed, photoURL, lostComment sql.NullString
		ownerName, ownerPhone                 sql.NullString
		birthDate                             sql.NullTime
		weight                                sql.NullFloat64
	)

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&species,
		&breed,
		&birthDate,
		&weight,
		&photoURL,
		&lostComment,
		&p.CreatedAt,
		&ownerName,
		&ownerPhone,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.PublicPet{}, pets.ErrNotFound
		}
		return pets.PublicPet{}, err
	}

	p.Species = species.String
	p.Breed = breed.String
	p.PhotoURL = photoURL.String
	p.LostComment = lostComment.String
	p.Weight = weight.Float64
	if birthDate.Valid {
		t := birthDate.Time
		p.BirthDate = &t
	}
	p.Owner = pets.Owner{
		Name:  ownerName.String,
		Phone: ownerPhone.String,
	}

	return p, nil
}
