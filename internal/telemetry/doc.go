// Package telemetry обеспечивает наблюдаемость системы.
//
// logging.go настраивает structured logging через slog: единый формат
// для всех сервисов, уровень и формат берутся из окружения.
// Prometheus-метрики сервисы регистрируют у себя и экспортируют
// на /metrics endpoint.
package telemetry
