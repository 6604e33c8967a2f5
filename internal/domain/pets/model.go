package pets

import "time"

// OwnerPlaceholder se usa cuando el perfil del dueño no está disponible
// en la consulta pública.
const OwnerPlaceholder = "Не указано"

// Owner son los datos de contacto del dueño que se exponen públicamente
// en la ficha de mascota perdida.
type Owner struct {
	Name  string
	Phone string
}

// PublicPet es la ficha pública de una mascota (lookup "mascota perdida").
// Solo lectura: no hay path de escritura en este servicio.
type PublicPet struct {
	ID          string
	Name        string
	Species     string
	Breed       string
	BirthDate   *time.Time
	Weight      float64
	PhotoURL    string
	LostComment string
	CreatedAt   time.Time

	Owner Owner
}
