package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"petvizor/internal/domain/pets"
)

type PetsRepo struct {
	client *Client
}

func NewPetsRepo(client *Client) *PetsRepo {
	return &PetsRepo{client: client}
}

// petRow: una sola consulta con el perfil del dueño embebido.
type petRow struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Species     *string  `json:"species"`
	Breed       *string  `json:"breed"`
	BirthDate   *string  `json:"birth_date"` // DATE llega como YYYY-MM-DD
	Weight      *float64 `json:"weight"`
	PhotoURL    *string  `json:"photo_url"`
	LostComment *string  `json:"lost_comment"`
	CreatedAt   time.Time `json:"created_at"`

	Owner *struct {
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
	} `json:"profiles"`
}

func (r *PetsRepo) GetPublicByID(ctx context.Context, id string) (pets.PublicPet, error) {
	path := "/rest/v1/pets?id=eq." + url.QueryEscape(id) +
		"&select=id,name,species,breed,birth_date,weight,photo_url,lost_comment,created_at,profiles(full_name,phone)" +
		"&limit=1"

	var rows []petRow
	if err := r.client.rest(ctx, http.MethodGet, path, nil, nil, &rows); err != nil {
		return pets.PublicPet{}, err
	}
	if len(rows) == 0 {
		return pets.PublicPet{}, pets.ErrNotFound
	}

	row := rows[0]
	p := pets.PublicPet{
		ID:          row.ID,
		Name:        row.Name,
		Species:     deref(row.Species),
		Breed:       deref(row.Breed),
		PhotoURL:    deref(row.PhotoURL),
		LostComment: deref(row.LostComment),
		CreatedAt:   row.CreatedAt,
	}

	if row.Weight != nil {
		p.Weight = *row.Weight
	}
	if row.BirthDate != nil {
		if t, err := time.Parse("2006-01-02", *row.BirthDate); err == nil {
			p.BirthDate = &t
		}
	}
	if row.Owner != nil {
		p.Owner = pets.Owner{
			Name:  deref(row.Owner.FullName),
			Phone: deref(row.Owner.Phone),
		}
	}

	return p, nil
}
