// Package expirer — фоновый сервис, помечающий просроченные задачи.
//
// Работает тиками: на каждом тике выбирает PENDING задачи с истёкшим
// сроком и проводит их через команду Expire. Ошибки одной задачи не
// блокируют обработку остальных. Отдельно сервис подсвечивает
// организации с наступившими повторяющимися задачами — сами повторы
// пока только логируются.
package expirer
