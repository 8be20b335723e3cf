package domain

import "errors"

// Ошибки команд организации.
var (
	// ErrCannotCreate — организацию нельзя создать без владельца.
	ErrCannotCreate = errors.New("cannot create organization")

	// ErrTagAlreadyExists — тег с таким именем уже есть в организации.
	ErrTagAlreadyExists = errors.New("tag already exists")

	// ErrTagDoesNotExist — тег не найден в организации.
	ErrTagDoesNotExist = errors.New("tag does not exist")

	// ErrNoWorkers — в пересечении тегов нет исполнителей для назначения.
	ErrNoWorkers = errors.New("no accounts available to assign in tags")

	// ErrNotAuthorized — у аккаунта нет прав на операцию.
	ErrNotAuthorized = errors.New("not authorized for action")

	// ErrNotInOrg — запрашивающий аккаунт не привязан к организации.
	ErrNotInOrg = errors.New("requesting account is not part of this organization")

	// ErrInvalidRepeatingTask — расписание повторяющегося назначения некорректно.
	ErrInvalidRepeatingTask = errors.New("repeating task date is invalid")

	// ErrNotSupported — операция объявлена, но её семантика не определена.
	ErrNotSupported = errors.New("operation is not supported")
)

// Ошибки жизненного цикла экземпляра задачи.
var (
	// ErrStatusNotApplicable — действие невозможно в текущем статусе задачи.
	ErrStatusNotApplicable = errors.New("action cannot be performed on task status")

	// ErrTaskDoesNotExpire — у задачи не задан срок, продлевать нечего.
	ErrTaskDoesNotExpire = errors.New("task does not have an expiration")
)
