package domain

// CatalogueTask — определение задачи в каталоге организации.
// Неизменяемая запись, на которую ссылаются назначения; свой
// жизненный цикл есть только у экземпляров (TaskInstance).
type CatalogueTask struct {
	ID           CatalogueTaskID `json:"id"`
	Organization OrganizationID  `json:"organization"`
	CreatedBy    AccountID       `json:"created_by"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
}
