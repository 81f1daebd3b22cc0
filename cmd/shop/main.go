package main

import (
	"database/sql"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniShop/internal/cart"
	"MiniShop/internal/catalog"
	"MiniShop/internal/checkout"
	"MiniShop/internal/journal"
	"MiniShop/internal/session"
	"MiniShop/internal/shop"
	"MiniShop/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	service := "shop"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")

	secret := os.Getenv("SESSION_SECRET")
	if len(secret) < 32 {
		log.Fatal("SESSION_SECRET is required and must be at least 32 chars")
	}
	ttlHours, err := strconv.Atoi(getenv("SESSION_TTL_HOURS", "72"))
	if err != nil || ttlHours <= 0 {
		log.Fatal("SESSION_TTL_HOURS must be a positive integer")
	}

	orders, contacts, cleanup, err := buildJournals(log)
	if err != nil {
		log.Fatal("init journals failed", zap.Error(err))
	}
	defer cleanup()

	cat := catalog.Default()
	carts := cart.NewStore()

	pipe := &checkout.Pipeline{
		Catalog:  cat,
		Carts:    carts,
		Orders:   orders,
		Contacts: contacts,
	}

	s := &shop.Server{
		Catalog:  &catalog.Server{Catalog: cat, Log: log},
		Cart:     &cart.Server{Store: carts, Catalog: cat, Log: log},
		Forms:    &checkout.Server{Pipeline: pipe, Log: log},
		Sessions: session.NewManager(secret, time.Duration(ttlHours)*time.Hour),
		Journals: []journal.Appender{orders, contacts},
		Log:      log,
	}

	reg := prometheus.NewRegistry()
	h := shop.NewHandler(s, shop.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: getenv("METRICS_ENABLED", "") == "true",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildJournals(log *zap.Logger) (orders, contacts journal.Appender, cleanup func(), err error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("journals backed by postgres")
		return journal.NewPostgres(db, "order_journal"),
			journal.NewPostgres(db, "contact_journal"),
			func() { _ = db.Close() },
			nil
	}

	ordersPath := getenv("ORDERS_PATH", "orders.json")
	contactsPath := getenv("CONTACTS_PATH", "contacts.json")

	of, err := journal.OpenFile(ordersPath)
	if err != nil {
		return nil, nil, nil, err
	}
	cf, err := journal.OpenFile(contactsPath)
	if err != nil {
		_ = of.Close()
		return nil, nil, nil, err
	}

	log.Info("journals backed by files",
		zap.String("orders", ordersPath),
		zap.String("contacts", contactsPath),
	)
	return of, cf, func() { _ = of.Close(); _ = cf.Close() }, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
