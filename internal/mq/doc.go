// Package mq предоставляет инфраструктуру для работы с RabbitMQ.
//
// Структура:
//   - connection.go — управление соединением с RabbitMQ (reconnect, graceful shutdown)
//   - topology.go   — объявление exchanges, queues, bindings
//   - publisher.go  — публикация доменных событий
//
// Репозитории публикуют каждое персистированное доменное событие
// в соответствующий exchange. Публикация — fire-and-forget: подписчики
// (уведомления, проекции, интеграции) не участвуют в транзакции команды.
//
// Exchanges:
//   - delega.orgs  — события организаций
//   - delega.tasks — события экземпляров задач
package mq
