package repo

import (
	"encoding/json"
	"fmt"

	"github.com/shaiso/Delega/internal/domain"
)

// Кодек доменных событий для event store: событие хранится как пара
// (kind, payload jsonb). Kind задаёт конкретный тип при десериализации.

// encodeOrganizationEvent сериализует событие организации.
func encodeOrganizationEvent(event domain.OrganizationEvent) (string, []byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", nil, fmt.Errorf("marshal %s: %w", event.Kind(), err)
	}
	return event.Kind(), payload, nil
}

// decodeOrganizationEvent десериализует событие организации.
func decodeOrganizationEvent(kind string, payload []byte) (domain.OrganizationEvent, error) {
	var (
		event domain.OrganizationEvent
		err   error
	)
	switch kind {
	case domain.KindOrganizationCreated:
		var e domain.OrganizationCreated
		err = json.Unmarshal(payload, &e)
		event = e
	case domain.KindTagAdded:
		var e domain.TagAdded
		err = json.Unmarshal(payload, &e)
		event = e
	case domain.KindTagRemoved:
		var e domain.TagRemoved
		err = json.Unmarshal(payload, &e)
		event = e
	case domain.KindEditorAddedToTag:
		var e domain.EditorAddedToTag
		err = json.Unmarshal(payload, &e)
		event = e
	case domain.KindWorkerAddedToTag:
		var e domain.WorkerAddedToTag
		err = json.Unmarshal(payload, &e)
		event = e
	case domain.KindAccountLinked:
		var e domain.AccountLinked
		err = json.Unmarshal(payload, &e)
		event = e
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", kind, err)
	}
	return event, nil
}

// encodeTaskEvent сериализует событие задачи.
func encodeTaskEvent(event domain.TaskEvent) (string, []byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", nil, fmt.Errorf("marshal %s: %w", event.Kind(), err)
	}
	return event.Kind(), payload, nil
}

// decodeTaskEvent десериализует событие задачи.
func decodeTaskEvent(kind string, payload []byte) (domain.TaskEvent, error) {
	var (
		event domain.TaskEvent
		err   error
	)
	switch kind {
	case domain.KindTaskAssigned:
		var e domain.TaskAssigned
		err = json.Unmarshal(payload, &e)
		event = e
	case domain.KindTaskFinished:
		var e domain.TaskFinished
		err = json.Unmarshal(payload, &e)
		event = e
	case domain.KindTaskRejected:
		var e domain.TaskRejected
		err = json.Unmarshal(payload, &e)
		event = e
	case domain.KindTaskExpired:
		var e domain.TaskExpired
		err = json.Unmarshal(payload, &e)
		event = e
	case domain.KindTaskTimeAdded:
		var e domain.TaskTimeAdded
		err = json.Unmarshal(payload, &e)
		event = e
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", kind, err)
	}
	return event, nil
}

// taskEventID возвращает идентификатор задачи, к которой относится событие.
func taskEventID(event domain.TaskEvent) domain.TaskID {
	switch e := event.(type) {
	case domain.TaskAssigned:
		return e.ID
	case domain.TaskFinished:
		return e.TaskID
	case domain.TaskRejected:
		return e.TaskID
	case domain.TaskExpired:
		return e.TaskID
	case domain.TaskTimeAdded:
		return e.TaskID
	default:
		return domain.TaskID{}
	}
}
