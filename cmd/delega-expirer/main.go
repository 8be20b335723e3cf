// Delega Expirer — фоновый сервис истечения сроков задач.
//
// Expirer:
//   - По тикам находит PENDING задачи с истёкшим сроком
//   - Проводит их через команду Expire
//   - Подсвечивает организации с наступившими повторяющимися задачами
//
// Через pg advisory lock среди реплик выбирается один лидер,
// остальные пропускают тики.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/Delega/internal/expirer"
	"github.com/shaiso/Delega/internal/mq"
	"github.com/shaiso/Delega/internal/repo"
	"github.com/shaiso/Delega/internal/service"
	"github.com/shaiso/Delega/internal/telemetry"
)

const expirerLockKey int64 = 727272

var expiredTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "delega_expirer_tasks_expired_total",
	Help: "Total tasks marked as expired",
})

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting delega-expirer")

	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// DB pool
	pool, err := repo.NewPool(ctx)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("database connected")

	// RabbitMQ
	var publisher *mq.Publisher
	mqConn, err := mq.NewConnection(mq.URL(), logger)
	if err != nil {
		logger.Warn("RabbitMQ not available, events will not be published", "error", err)
	} else {
		defer mqConn.Close()
		logger.Info("RabbitMQ connected")
		publisher = mq.NewPublisher(mqConn, logger)
	}

	orgRepo := repo.NewOrganizationRepo(pool, publisher, logger)
	taskRepo := repo.NewTaskRepo(pool, publisher, logger)
	management := service.NewManagement(orgRepo, taskRepo, logger)

	exp := expirer.New(expirer.Config{
		Management: management,
		TaskRepo:   taskRepo,
		OrgRepo:    orgRepo,
		Logger:     logger,
	})

	interval := 10 * time.Second
	if v := os.Getenv("EXPIRER_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			interval = d
		}
	}

	// HTTP mux: /healthz + /metrics
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	// expirer loop
	go func() {
		tk := time.NewTicker(interval)
		defer tk.Stop()

		var hasLock bool
		defer func() {
			if hasLock {
				_, _ = pool.Exec(context.Background(), "select pg_advisory_unlock($1)", expirerLockKey)
			}
		}()

		for {
			select {
			case t := <-tk.C:
				// пытаемся стать лидером (или подтвердить лидерство)
				if !hasLock {
					var ok bool
					if err := pool.QueryRow(ctx, "select pg_try_advisory_lock($1)", expirerLockKey).Scan(&ok); err != nil {
						logger.Error("leader lock error", "error", err)
						continue
					}
					hasLock = ok
				}

				if !hasLock {
					// не лидер — пропускаем тик
					continue
				}

				expired, err := exp.Tick(ctx)
				if err != nil {
					logger.Error("tick failed", "error", err)
					continue
				}
				expiredTotal.Add(float64(expired))

				exp.ReportDueRepeats(ctx, t)

			case <-ctx.Done():
				return
			}
		}
	}()

	// serve
	port := ":8081"
	if v := os.Getenv("EXPIRER_PORT"); v != "" {
		port = ":" + v
	}

	go func() {
		logger.Info("listening", "addr", port)
		if err := http.ListenAndServe(port, mux); err != nil {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("delega-expirer stopped")
}
