package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/piket-xe8/piket-backend-go/internal/config"
	"github.com/piket-xe8/piket-backend-go/internal/fixtures"
	appHTTP "github.com/piket-xe8/piket-backend-go/internal/handler/http"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/cache"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/cron"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/jwt"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/localdb"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/metrics"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/queue"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sheet"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sse"
	repository "github.com/piket-xe8/piket-backend-go/internal/repository/localdb"
	absensiService "github.com/piket-xe8/piket-backend-go/internal/service/absensi"
	authService "github.com/piket-xe8/piket-backend-go/internal/service/auth"
	dashboardService "github.com/piket-xe8/piket-backend-go/internal/service/dashboard"
	"github.com/piket-xe8/piket-backend-go/internal/service/dispatch"
	laporanService "github.com/piket-xe8/piket-backend-go/internal/service/laporan"
	notificationService "github.com/piket-xe8/piket-backend-go/internal/service/notification"
	pelanggaranService "github.com/piket-xe8/piket-backend-go/internal/service/pelanggaran"
	scheduleService "github.com/piket-xe8/piket-backend-go/internal/service/schedule"
	studentService "github.com/piket-xe8/piket-backend-go/internal/service/student"
	syncService "github.com/piket-xe8/piket-backend-go/internal/service/sync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	kv, err := localdb.NewKV(cfg.Data.Dir)
	if err != nil {
		fmt.Println("Error opening data directory:", err)
		return
	}

	db, err := database.New(kv, fixtures.ClassDefaults)
	if err != nil {
		fmt.Println("Error loading local database:", err)
		return
	}

	pending, err := queue.New(kv)
	if err != nil {
		fmt.Println("Error loading pending queue:", err)
		return
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	sheetClient := sheet.NewClient(cfg.Sheet.URL, cfg.Sheet.Timeout)
	requestCache := cache.New(kv, cfg.Sync.CacheTTL)
	dispatcher := dispatch.New(sheetClient, pending, cfg.Sheet.Enabled)
	hub := sse.NewHub()

	absensiRepo := repository.NewAbsensiRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	laporanRepo := repository.NewLaporanRepository(db)
	pelanggaranRepo := repository.NewPelanggaranRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	userRepo := repository.NewUserRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	notifSvc := notificationService.NewNotificationService(notificationRepo, hub)
	absensiSvc := absensiService.NewAbsensiService(absensiRepo, studentRepo, dispatcher, m, cfg.Piket.ClassCode)
	laporanSvc := laporanService.NewLaporanService(laporanRepo, absensiRepo, studentRepo, settingRepo, notifSvc, dispatcher)
	pelanggaranSvc := pelanggaranService.NewPelanggaranService(pelanggaranRepo, studentRepo, notifSvc, dispatcher)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, dispatcher)
	studentSvc := studentService.NewStudentService(studentRepo, absensiRepo, laporanRepo)
	authSvc := authService.NewAuthService(studentRepo, userRepo, jwtSvc, dispatcher)
	dashboardSvc := dashboardService.NewDashboardService(studentRepo, absensiRepo, laporanRepo, scheduleRepo)
	syncSvc := syncService.NewSyncService(cfg.Sync, cfg.Sheet.Enabled, sheetClient, requestCache, pending, absensiRepo, notifSvc, m)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("sheet-sync", cfg.Sync.Interval, func(ctx context.Context) error {
		_, err := syncSvc.FetchAndSync(ctx)
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtSvc, registry, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtSvc),
		Absensi:      appHTTP.NewAbsensiHandler(absensiSvc),
		Laporan:      appHTTP.NewLaporanHandler(laporanSvc),
		Pelanggaran:  appHTTP.NewPelanggaranHandler(pelanggaranSvc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
		Student:      appHTTP.NewStudentHandler(studentSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Notification: appHTTP.NewNotificationHandler(notifSvc, jwtSvc),
		Sync:         appHTTP.NewSyncHandler(syncSvc),
		Master:       appHTTP.NewMasterHandler(settingRepo),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	stop, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
