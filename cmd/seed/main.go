// Seeds the database with the demo data set: two roles, two users with
// hashed passwords and a handful of records per resource.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ims/backend/internal/infrastructure/auth"
	"github.com/ims/backend/internal/infrastructure/config"
	"github.com/ims/backend/internal/infrastructure/logger"
	"github.com/ims/backend/internal/infrastructure/persistence"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := seed(db.DB); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Database has been seeded")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		adminRole := models.Role{RoleName: "Admin"}
		userRole := models.Role{RoleName: "User"}
		if err := tx.Create(&adminRole).Error; err != nil {
			return err
		}
		if err := tx.Create(&userRole).Error; err != nil {
			return err
		}

		adminHash, err := auth.HashPassword("adminpassword")
		if err != nil {
			return err
		}
		userHash, err := auth.HashPassword("userpassword")
		if err != nil {
			return err
		}

		adminUser := models.User{
			Username:     "admin",
			PasswordHash: adminHash,
			AccountName:  "Admin Account",
			Email:        "admin@example.com",
			RoleID:       adminRole.ID,
		}
		normalUser := models.User{
			Username:     "user",
			PasswordHash: userHash,
			AccountName:  "User Account",
			Email:        "user@example.com",
			RoleID:       userRole.ID,
		}
		if err := tx.Create(&adminUser).Error; err != nil {
			return err
		}
		if err := tx.Create(&normalUser).Error; err != nil {
			return err
		}

		customer1 := models.Customer{
			CustomerID:    "CUST001",
			CustomerName:  "Customer One",
			CustomerType:  "Type A",
			Image:         "image1.png",
			Address:       "Address 1",
			Phone:         "1234567890",
			Email:         "customer1@example.com",
			CreditBalance: 100.0,
		}
		customer2 := models.Customer{
			CustomerID:    "CUST002",
			CustomerName:  "Customer Two",
			CustomerType:  "Type B",
			Image:         "image2.png",
			Address:       "Address 2",
			Phone:         "0987654321",
			Email:         "customer2@example.com",
			CreditBalance: 200.0,
		}
		if err := tx.Create(&customer1).Error; err != nil {
			return err
		}
		if err := tx.Create(&customer2).Error; err != nil {
			return err
		}

		products := []models.Product{
			{SKU: "PROD001", ProductName: "Product One", UnitPrice: 50.0},
			{SKU: "PROD002", ProductName: "Product Two", UnitPrice: 75.0},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		services := []models.Service{
			{ServiceCode: "SRV001", ServiceName: "Service One", UnitPrice: 30.0},
		}
		if err := tx.Create(&services).Error; err != nil {
			return err
		}

		order1 := models.Order{CustomerID: customer1.ID, UserID: adminUser.ID, OrderStatus: "Pending"}
		order2 := models.Order{CustomerID: customer2.ID, UserID: normalUser.ID, OrderStatus: "Completed"}
		if err := tx.Create(&order1).Error; err != nil {
			return err
		}
		if err := tx.Create(&order2).Error; err != nil {
			return err
		}

		warehouse1 := models.Warehouse{
			WarehouseID:   "WH001",
			WarehouseName: "Warehouse One",
			Location:      "Location 1",
		}
		if err := tx.Create(&warehouse1).Error; err != nil {
			return err
		}

		vendor1 := models.Vendor{
			VendorID:        "VEND001",
			VendorName:      "Vendor One",
			VendorAddress:   "Vendor Address 1",
			VendorPhone:     "1111111111",
			VendorTaxNumber: "TAX001",
		}
		if err := tx.Create(&vendor1).Error; err != nil {
			return err
		}

		transaction1 := models.Transaction{
			TransactionID:   "TXN001",
			TransactionDate: time.Now().UTC(),
			OrderID:         order1.ID,
			UserID:          adminUser.ID,
			Amount:          100.0,
			TransactionType: "Credit",
		}
		if err := tx.Create(&transaction1).Error; err != nil {
			return err
		}

		expense1 := models.Expense{
			ExpenseID:   "EXP001",
			ExpenseName: "Expense One",
			Description: "Expense Description",
			Amount:      20.0,
			ExpenseDate: time.Now().UTC(),
			Category:    "Office",
			UserID:      adminUser.ID,
		}
		if err := tx.Create(&expense1).Error; err != nil {
			return err
		}

		pic1 := models.PIC{
			PicID:       "PIC001",
			UserID:      adminUser.ID,
			WarehouseID: warehouse1.ID,
		}
		return tx.Create(&pic1).Error
	})
}
