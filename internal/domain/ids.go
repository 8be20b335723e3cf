package domain

import (
	"bytes"

	"github.com/google/uuid"
)

// Идентификаторы — обёртки над UUIDv7 (128 бит, сортируемые по времени).
// Отдельный тип на каждую сущность, чтобы нельзя было перепутать
// id организации и id аккаунта в сигнатурах команд.

// newSortableID возвращает свежий UUIDv7.
// UUIDv7 монотонно растёт во времени, что даёт естественный порядок
// в индексах БД. При недоступности источника времени откатываемся на v4.
func newSortableID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// OrganizationID — идентификатор организации.
type OrganizationID uuid.UUID

// NewOrganizationID создаёт новый OrganizationID.
func NewOrganizationID() OrganizationID {
	return OrganizationID(newSortableID())
}

// ParseOrganizationID парсит строковое представление.
func ParseOrganizationID(s string) (OrganizationID, error) {
	id, err := uuid.Parse(s)
	return OrganizationID(id), err
}

func (id OrganizationID) String() string { return uuid.UUID(id).String() }

// IsZero возвращает true для нулевого идентификатора.
func (id OrganizationID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// UUID возвращает underlying значение для персистентности.
func (id OrganizationID) UUID() uuid.UUID { return uuid.UUID(id) }

func (id OrganizationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *OrganizationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// TagID — идентификатор тега внутри организации.
type TagID uuid.UUID

// NewTagID создаёт новый TagID.
func NewTagID() TagID {
	return TagID(newSortableID())
}

// ParseTagID парсит строковое представление.
func ParseTagID(s string) (TagID, error) {
	id, err := uuid.Parse(s)
	return TagID(id), err
}

func (id TagID) String() string { return uuid.UUID(id).String() }

func (id TagID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id TagID) UUID() uuid.UUID { return uuid.UUID(id) }

func (id TagID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *TagID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// AccountID — идентификатор аккаунта.
type AccountID uuid.UUID

// NewAccountID создаёт новый AccountID.
func NewAccountID() AccountID {
	return AccountID(newSortableID())
}

// ParseAccountID парсит строковое представление.
func ParseAccountID(s string) (AccountID, error) {
	id, err := uuid.Parse(s)
	return AccountID(id), err
}

func (id AccountID) String() string { return uuid.UUID(id).String() }

func (id AccountID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id AccountID) UUID() uuid.UUID { return uuid.UUID(id) }

// Compare упорядочивает аккаунты по значению идентификатора.
// Используется для детерминированного обхода множеств исполнителей.
func (id AccountID) Compare(other AccountID) int {
	a, b := id.UUID(), other.UUID()
	return bytes.Compare(a[:], b[:])
}

func (id AccountID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *AccountID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// TaskID — идентификатор экземпляра задачи (конкретного назначения).
type TaskID uuid.UUID

// NewTaskID создаёт новый TaskID.
func NewTaskID() TaskID {
	return TaskID(newSortableID())
}

// ParseTaskID парсит строковое представление.
func ParseTaskID(s string) (TaskID, error) {
	id, err := uuid.Parse(s)
	return TaskID(id), err
}

func (id TaskID) String() string { return uuid.UUID(id).String() }

func (id TaskID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id TaskID) UUID() uuid.UUID { return uuid.UUID(id) }

func (id TaskID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *TaskID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// CatalogueTaskID — идентификатор определения задачи в каталоге.
type CatalogueTaskID uuid.UUID

// NewCatalogueTaskID создаёт новый CatalogueTaskID.
func NewCatalogueTaskID() CatalogueTaskID {
	return CatalogueTaskID(newSortableID())
}

// ParseCatalogueTaskID парсит строковое представление.
func ParseCatalogueTaskID(s string) (CatalogueTaskID, error) {
	id, err := uuid.Parse(s)
	return CatalogueTaskID(id), err
}

func (id CatalogueTaskID) String() string { return uuid.UUID(id).String() }

func (id CatalogueTaskID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id CatalogueTaskID) UUID() uuid.UUID { return uuid.UUID(id) }

func (id CatalogueTaskID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *CatalogueTaskID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
