package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/config"
	"github.com/freshkart/freshkart-backend/internal/app/model"
	"github.com/freshkart/freshkart-backend/internal/app/repository"
	"github.com/freshkart/freshkart-backend/internal/db"
	"github.com/freshkart/freshkart-backend/pkg/util"
)

// Seeds the Users store with staff principals: the bootstrap Admin from env
// config, plus an optional Administrator roster from an XLSX file with
// columns Name | Email | Password.
//
// Usage: go run cmd/seed/main.go [administrators.xlsx]
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	stores, err := db.Connect(&cfg.Stores)
	if err != nil {
		log.Fatal("Failed to connect to stores:", err)
	}
	defer stores.Close()

	if err := stores.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	principalRepo := repository.NewPrincipalRepository(stores.Users)

	if cfg.Seed.AdminEmail != "" && cfg.Seed.AdminPassword != "" {
		created, err := seedPrincipal(principalRepo, cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, model.RoleAdmin)
		if err != nil {
			log.Fatal("Failed to seed bootstrap admin:", err)
		}
		if created {
			fmt.Printf("Bootstrap admin created: %s\n", cfg.Seed.AdminEmail)
		} else {
			fmt.Printf("Bootstrap admin already exists: %s\n", cfg.Seed.AdminEmail)
		}
	} else {
		fmt.Println("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set, skipping bootstrap admin")
	}

	if len(os.Args) < 2 {
		return
	}

	filePath := os.Args[1]
	fmt.Printf("Reading administrator roster: %s\n", filePath)

	roster, err := readRosterFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}
	fmt.Printf("Administrators in roster: %d\n", len(roster))

	imported := 0
	for _, entry := range roster {
		created, err := seedPrincipal(principalRepo, entry.name, entry.email, entry.password, model.RoleAdministrator)
		if err != nil {
			log.Fatalf("Failed to import %s: %v", entry.email, err)
		}
		if created {
			imported++
		} else {
			fmt.Printf("Skipping existing account: %s\n", entry.email)
		}
	}

	fmt.Printf("Import completed: %d administrators created\n", imported)
}

type rosterEntry struct {
	name     string
	email    string
	password string
}

func seedPrincipal(repo repository.PrincipalRepository, name, email, password string, role model.Role) (bool, error) {
	_, err := repo.FindByEmail(email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	passwordHash, err := util.HashPassword(password)
	if err != nil {
		return false, err
	}

	principal := &model.Principal{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := repo.Create(principal); err != nil {
		return false, err
	}
	return true, nil
}

func readRosterFromXLSX(filePath string) ([]rosterEntry, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("roster has no data rows")
	}

	var roster []rosterEntry
	for i, row := range rows[1:] { // skip the header row
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: expected Name, Email, Password columns", i+2)
		}
		entry := rosterEntry{
			name:     strings.TrimSpace(row[0]),
			email:    strings.ToLower(strings.TrimSpace(row[1])),
			password: strings.TrimSpace(row[2]),
		}
		if entry.name == "" || entry.email == "" || entry.password == "" {
			return nil, fmt.Errorf("row %d: blank field", i+2)
		}
		if !util.IsValidEmail(entry.email) {
			return nil, fmt.Errorf("row %d: invalid email %q", i+2, entry.email)
		}
		roster = append(roster, entry)
	}
	return roster, nil
}
