// Package models defines the persistence records for every exposed resource.
// Records are flat: a store-assigned numeric primary key plus scalar fields.
// JSON field names match the wire format consumed by the frontend.
package models

import "time"

// Customer is a buying party with a credit balance
type Customer struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CustomerID    string  `gorm:"column:customer_id;not null" json:"customer_id"`
	CustomerName  string  `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerType  string  `gorm:"column:customer_type;not null" json:"customer_type"`
	Image         string  `gorm:"column:image" json:"image"`
	Address       string  `gorm:"column:address" json:"address"`
	Phone         string  `gorm:"column:phone" json:"phone"`
	Email         string  `gorm:"column:email" json:"email"`
	CreditBalance float64 `gorm:"column:credit_balance" json:"credit_balance"`
}

// Product is a stocked item identified by SKU
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProductName string  `gorm:"column:product_name;not null" json:"product_name"`
	SKU         string  `gorm:"column:sku;not null" json:"sku"`
	UnitPrice   float64 `gorm:"column:unit_price" json:"unit_price"`
}

// Service is a billable non-stocked item
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ServiceCode string  `gorm:"column:service_code;not null" json:"service_code"`
	ServiceName string  `gorm:"column:service_name;not null" json:"service_name"`
	UnitPrice   float64 `gorm:"column:unit_price" json:"unit_price"`
}

// Expense is an operating cost booked by a user
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ExpenseID   string    `gorm:"column:expense_id;not null" json:"expense_id"`
	ExpenseName string    `gorm:"column:expense_name;not null" json:"expense_name"`
	Description string    `gorm:"column:description" json:"description"`
	Amount      float64   `gorm:"column:amount" json:"amount"`
	ExpenseDate time.Time `gorm:"column:expense_date" json:"expense_date"`
	Category    string    `gorm:"column:category" json:"category"`
	UserID      uint      `gorm:"column:user_id" json:"user_id"`
}

// Vendor is a supplying party
type Vendor struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	VendorID        string `gorm:"column:vendor_id;not null" json:"vendor_id"`
	VendorName      string `gorm:"column:vendor_name;not null" json:"vendor_name"`
	VendorAddress   string `gorm:"column:vendor_address" json:"vendor_address"`
	VendorPhone     string `gorm:"column:vendor_phone" json:"vendor_phone"`
	VendorTaxNumber string `gorm:"column:vendor_tax_number" json:"vendor_tax_number"`
}

// Warehouse is a storage location
type Warehouse struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	WarehouseID   string `gorm:"column:warehouse_id;not null" json:"warehouse_id"`
	WarehouseName string `gorm:"column:warehouse_name;not null" json:"warehouse_name"`
	Location      string `gorm:"column:location" json:"location"`
}

// Transaction is a payment movement against an order
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TransactionID   string    `gorm:"column:transaction_id;not null" json:"transaction_id"`
	TransactionDate time.Time `gorm:"column:transaction_date" json:"transaction_date"`
	OrderID         uint      `gorm:"column:order_id" json:"order_id"`
	UserID          uint      `gorm:"column:user_id" json:"user_id"`
	Amount          float64   `gorm:"column:amount" json:"amount"`
	TransactionType string    `gorm:"column:transaction_type" json:"transaction_type"`
}

// PIC is a person in charge of a warehouse
type PIC struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PicID       string `gorm:"column:pic_id;not null" json:"pic_id"`
	UserID      uint   `gorm:"column:user_id" json:"user_id"`
	WarehouseID uint   `gorm:"column:warehouse_id" json:"warehouse_id"`
}

// TableName overrides gorm's default pluralization ("pics")
func (PIC) TableName() string {
	return "pics"
}

// User is an account that can authenticate.
// The password hash is never serialized.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"column:username;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
	AccountName  string `gorm:"column:account_name" json:"account_name"`
	Email        string `gorm:"column:email" json:"email"`
	RoleID       uint   `gorm:"column:role_id" json:"role_id"`
}

// Role groups users for the seeded accounts
type Role struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RoleName string `gorm:"column:role_name;not null" json:"role_name"`
}

// Order links customers and users; transactions reference it
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CustomerID  uint   `gorm:"column:customer_id" json:"customer_id"`
	UserID      uint   `gorm:"column:user_id" json:"user_id"`
	OrderStatus string `gorm:"column:order_status" json:"order_status"`
}
