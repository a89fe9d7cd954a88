package main

import (
	"context"
	"errors"
	"time"

	account "grain-market/internal/accountService"
	auction "grain-market/internal/auctionService"
	"grain-market/internal/auth"
	catalog "grain-market/internal/catalogService"
	"grain-market/internal/config"
	"grain-market/internal/markerrors"
	model "grain-market/internal/models"
	"grain-market/internal/notify"
	"grain-market/internal/repository"
	"grain-market/internal/server"
	"grain-market/utils"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("cannot load config", map[string]any{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := repository.Connect(ctx, cfg.MongoURL)
	if err != nil {
		utils.Fatal("cannot connect to database", map[string]any{"error": err.Error()})
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			utils.Warn("error disconnecting from database", map[string]any{"error": err.Error()})
		}
	}()

	store := repository.NewMongoStore(client.Database(cfg.DBName))

	seedGrains(ctx, store)
	seedAdmin(ctx, store, cfg)

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	mailer := notify.NewLogMailer()

	accountSvc := account.NewAccountService(store, tokens, mailer)
	auctionSvc := auction.NewAuctionService(store, store, store, mailer)
	catalogSvc := catalog.NewCatalogService(store)

	authMW := server.NewAuthMiddleware(tokens)
	router := server.SetupRouter(accountSvc, auctionSvc, catalogSvc, authMW)

	utils.Info("starting grain market server", map[string]any{"address": cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		utils.Fatal("server failed", map[string]any{"error": err.Error()})
	}
}

// seedGrains inserts the initial catalog when the collection is empty
func seedGrains(ctx context.Context, store repository.CatalogStore) {
	count, err := store.CountGrains(ctx)
	if err != nil {
		utils.Fatal("cannot check grain catalog", map[string]any{"error": err.Error()})
	}
	if count > 0 {
		return
	}

	if err := store.InsertGrains(ctx, initialGrains()); err != nil {
		utils.Fatal("cannot seed grain catalog", map[string]any{"error": err.Error()})
	}
	utils.Info("seeded grain catalog", map[string]any{"count": len(initialGrains())})
}

// seedAdmin creates the default pre-approved admin account if missing
func seedAdmin(ctx context.Context, store repository.UserStore, cfg config.Config) {
	if cfg.AdminPassword == "" {
		utils.Warn("ADMIN_PASSWORD not set, skipping admin seeding", nil)
		return
	}

	_, err := store.FindUserByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return
	}
	if !errors.Is(err, markerrors.ErrUserNotFound) {
		utils.Fatal("cannot check admin account", map[string]any{"error": err.Error()})
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		utils.Fatal("cannot hash admin password", map[string]any{"error": err.Error()})
	}

	now := time.Now().UTC()
	admin := model.User{
		ID:                  utils.GenerateID(),
		Email:               cfg.AdminEmail,
		PasswordHash:        hash,
		FullName:            "Administrator",
		CompanyName:         "Grain Marketplace",
		EDRPOU:              "00000000",
		Phone:               "+380441234567",
		Role:                model.RoleAdmin,
		AccreditationStatus: model.AccreditationApproved,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := store.InsertUser(ctx, admin); err != nil {
		utils.Fatal("cannot seed admin account", map[string]any{"error": err.Error()})
	}
	utils.Info("admin account created", map[string]any{"email": cfg.AdminEmail})
}

// initialGrains returns the default grain catalog
func initialGrains() []model.Grain {
	return []model.Grain{
		{ID: "1", NameUA: "Пшениця", NameEN: "Wheat", Category: "1", Moisture: "12%", Protein: "14%", Gluten: "28%", Nature: "780 г/л", Image: "https://images.unsplash.com/photo-1555064837-3c7ae70f81be", Active: true},
		{ID: "2", NameUA: "Пшениця", NameEN: "Wheat", Category: "2", Moisture: "14%", Protein: "12%", Gluten: "25%", Nature: "760 г/л", Image: "https://images.unsplash.com/photo-1714168526009-2d0d333640d5", Active: true},
		{ID: "3", NameUA: "Пшениця", NameEN: "Wheat", Category: "3", Moisture: "15%", Protein: "11%", Gluten: "20%", Nature: "740 г/л", Image: "https://images.unsplash.com/photo-1714168526009-2d0d333640d5", Active: true},
		{ID: "4", NameUA: "Кукурудза", NameEN: "Corn", Category: "1", Moisture: "13%", Protein: "9%", Gluten: "N/A", Nature: "720 г/л", Image: "https://images.unsplash.com/photo-1633101143189-d28a58810351", Active: true},
		{ID: "5", NameUA: "Кукурудза", NameEN: "Corn", Category: "2", Moisture: "14%", Protein: "8.5%", Gluten: "N/A", Nature: "700 г/л", Image: "https://images.unsplash.com/photo-1633101143189-d28a58810351", Active: true},
		{ID: "6", NameUA: "Ячмінь", NameEN: "Barley", Category: "1", Moisture: "12%", Protein: "11%", Gluten: "N/A", Nature: "640 г/л", Image: "https://images.pexels.com/photos/5538161/pexels-photo-5538161.jpeg", Active: true},
		{ID: "7", NameUA: "Соняшник", NameEN: "Sunflower", Category: "1", Moisture: "7%", Protein: "16%", Gluten: "N/A", Nature: "N/A", Image: "https://images.unsplash.com/photo-1613500788522-89c4d55bdd0e", Active: true},
		{ID: "8", NameUA: "Овес", NameEN: "Oats", Category: "1", Moisture: "13%", Protein: "10%", Gluten: "N/A", Nature: "500 г/л", Image: "https://images.unsplash.com/photo-1555064837-3c7ae70f81be", Active: true},
		{ID: "9", NameUA: "Рапс", NameEN: "Rapeseed", Category: "1", Moisture: "9%", Protein: "20%", Gluten: "N/A", Nature: "N/A", Image: "https://images.unsplash.com/photo-1555064837-3c7ae70f81be", Active: true},
	}
}
