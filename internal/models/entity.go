package models

// Entity es cualquier registro persistible; el nombre lógico define la colección
type Entity interface {
	EntityName() string
}
