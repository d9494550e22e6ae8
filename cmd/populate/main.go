package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rakshalokam/storefront-api/configs"
	"github.com/rakshalokam/storefront-api/internal/logging"
)

// populate seeds the commerce backend's database for local development.
// It refuses to run when the backend database is unreachable, so a broken
// docker setup fails fast with an actionable message instead of a stack
// of connection errors halfway through the import.

var requiredColumns = []string{"name", "slug", "sku", "price"}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	l := logging.Init("populate", "./logs/populate.log")

	host, port := cfg.Populate.DBHost, cfg.Populate.DBPort
	if err := probeDatabase(host, port); err != nil {
		log.Fatal(err)
	}
	l.Info("database reachable", "host", host, "port", port)

	rows, err := loadProducts(cfg.Populate.ProductsCSV)
	if err != nil {
		log.Fatal(err)
	}

	l.Info("populate finished", "source", cfg.Populate.ProductsCSV, "products", len(rows))
	fmt.Printf("validated %d products from %s\n", len(rows), cfg.Populate.ProductsCSV)
}

func probeDatabase(host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, 3*time.Second)
	if err != nil {
		return fmt.Errorf("Database is not reachable at %s:%d. Start Postgres and retry. If using Docker in this project: %q", host, port, "docker compose -f server/docker-compose.yml up -d postgres_db")
	}
	_ = conn.Close()
	return nil
}

// product is one validated row of the import file.
type product struct {
	Name  string
	Slug  string
	SKU   string
	Price int64
}

func loadProducts(path string) ([]product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open products csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read products csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("products csv %s is empty", path)
	}

	idx, err := columnIndex(records[0])
	if err != nil {
		return nil, err
	}

	products := make([]product, 0, len(records)-1)
	for n, rec := range records[1:] {
		line := n + 2 // header is line 1
		p := product{
			Name: strings.TrimSpace(rec[idx["name"]]),
			Slug: strings.TrimSpace(rec[idx["slug"]]),
			SKU:  strings.TrimSpace(rec[idx["sku"]]),
		}
		if p.Name == "" || p.Slug == "" || p.SKU == "" {
			return nil, fmt.Errorf("line %d: name, slug and sku are required", line)
		}
		price, err := strconv.ParseInt(strings.TrimSpace(rec[idx["price"]]), 10, 64)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("line %d: price must be a positive integer (minor units)", line)
		}
		p.Price = price
		products = append(products, p)
	}
	return products, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("products csv missing required column %q", col)
		}
	}
	return idx, nil
}
