// cmd/seeder/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"banktransfer/internal/auth"
	"banktransfer/internal/config"
	"banktransfer/internal/domain"
	"banktransfer/internal/repository/postgres"
	"banktransfer/internal/util"
	"banktransfer/pkg/db"
)

// Fixed ids keep the demo fixture stable across resets.
var (
	luanaUserID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	joseUserID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	takashiUserID = uuid.MustParse("33333333-3333-3333-3333-333333333333")

	luanaPygAccountID   = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	luanaUsdAccountID   = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	josePygAccountID    = uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc")
	takashiPygAccountID = uuid.MustParse("dddddddd-dddd-dddd-dddd-dddddddddddd")
	takashiUsdAccountID = uuid.MustParse("eeeeeeee-eeee-eeee-eeee-eeeeeeeeeeee")
)

func main() {
	util.InitLogger()
	logger := util.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database, err := db.NewPostgresDB(cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := postgres.Migrate(ctx, database); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := seed(ctx, database); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
	logger.Info("Seed complete.")
}

// seed inserts the demo users and accounts, skipping if any user exists.
func seed(ctx context.Context, database *sqlx.DB) error {
	var count int64
	if err := database.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hasher := auth.NewPasswordHasher()
	userRepo := postgres.NewUserRepository()
	accountRepo := postgres.NewAccountRepository()

	users := []struct {
		id       uuid.UUID
		username string
		password string
	}{
		{luanaUserID, "luana", "luana123"},
		{joseUserID, "jose", "jose123"},
		{takashiUserID, "takashi", "takashi123"},
	}

	for _, u := range users {
		hash, err := hasher.Hash(u.password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.username, err)
		}
		user, err := domain.NewUser(u.username, hash)
		if err != nil {
			return err
		}
		user.ID = u.id
		if err := userRepo.Create(ctx, database, user); err != nil {
			return err
		}
	}

	accounts := []struct {
		id       uuid.UUID
		ownerID  uuid.UUID
		name     string
		balance  int64
		currency string
	}{
		{luanaPygAccountID, luanaUserID, "Luana", 1000, "PYG"},
		{luanaUsdAccountID, luanaUserID, "Luana", 200, "USD"},
		{josePygAccountID, joseUserID, "Jose", 500, "PYG"},
		{takashiPygAccountID, takashiUserID, "Takashi", 250, "PYG"},
		{takashiUsdAccountID, takashiUserID, "Takashi", 50, "USD"},
	}

	for _, a := range accounts {
		account, err := domain.NewAccount(a.ownerID, a.name, decimal.NewFromInt(a.balance), a.currency)
		if err != nil {
			return err
		}
		account.ID = a.id
		if err := accountRepo.Create(ctx, database, account); err != nil {
			return err
		}
	}
	return nil
}
