package roles

// Role es data de referencia estática, consultada por request y nunca cacheada.
type Role struct {
	ID          int64
	Name        string
	DisplayName string
}
