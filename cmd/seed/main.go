package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"

	"github.com/careslot/careslot-backend/internal/auth"
	"github.com/careslot/careslot-backend/internal/config"
	"github.com/careslot/careslot-backend/internal/database"
	"github.com/careslot/careslot-backend/internal/logging"
	"github.com/careslot/careslot-backend/internal/models"
	"github.com/careslot/careslot-backend/internal/store"
)

// Seeds demo doctors, patients, and appointments. Every account gets the
// same password ("password123") so the data is usable from the login route.
func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	gofakeit.Seed(time.Now().UnixNano())
	ctx := context.Background()

	users := store.NewUserStore(db)
	appts := store.NewAppointmentStore(db)

	hash, err := auth.HashPassword("password123")
	if err != nil {
		slog.Error("failed to hash seed password", "error", err)
		os.Exit(1)
	}

	doctors, err := seedUsers(ctx, users, models.RoleDoctor, 10, hash)
	if err != nil {
		slog.Error("seeding doctors failed", "error", err)
		os.Exit(1)
	}
	patients, err := seedUsers(ctx, users, models.RolePatient, 50, hash)
	if err != nil {
		slog.Error("seeding patients failed", "error", err)
		os.Exit(1)
	}
	if _, err := seedUsers(ctx, users, models.RoleAdmin, 1, hash); err != nil {
		slog.Error("seeding admin failed", "error", err)
		os.Exit(1)
	}

	statuses := []string{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusCanceled,
		models.StatusCompleted,
	}

	count := 0
	for _, patient := range patients {
		n := gofakeit.Number(0, 3)
		for i := 0; i < n; i++ {
			doctor := doctors[gofakeit.Number(0, len(doctors)-1)]
			day := time.Now().AddDate(0, 0, gofakeit.Number(1, 60))
			appt := &models.Appointment{
				PatientID: patient.ID,
				DoctorID:  doctor.ID,
				Date:      day.Format("2006-01-02"),
				Time:      fmt.Sprintf("%02d:%02d", gofakeit.Number(8, 17), 15*gofakeit.Number(0, 3)),
				Status:    statuses[gofakeit.Number(0, len(statuses)-1)],
				Reason:    gofakeit.Sentence(5),
			}
			if err := appts.Create(ctx, appt); err != nil {
				slog.Error("seeding appointment failed", "error", err)
				os.Exit(1)
			}
			count++
		}
	}

	slog.Info("seed complete",
		"doctors", len(doctors),
		"patients", len(patients),
		"appointments", count,
	)
}

func seedUsers(ctx context.Context, users store.UserStore, role string, count int, hash string) ([]models.User, error) {
	out := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%s-%d@%s", role, i, gofakeit.DomainName()),
			Password: hash,
			Role:     role,
			Gender:   gofakeit.Gender(),
		}
		if err := users.Create(ctx, user); err != nil {
			return nil, err
		}
		out = append(out, *user)
	}
	return out, nil
}
