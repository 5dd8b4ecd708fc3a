package handler

import (
	"time"

	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
)

// Request payloads declare each resource's full field set. Every field is
// required on create and update. Numeric fields are pointers so a literal
// zero still counts as present. Dates arrive as epoch milliseconds.

// CustomerRequest is the payload for creating or updating a customer
type CustomerRequest struct {
	CustomerID    string   `json:"customer_id" binding:"required"`
	CustomerName  string   `json:"customer_name" binding:"required"`
	CustomerType  string   `json:"customer_type" binding:"required"`
	Image         string   `json:"image" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	Phone         string   `json:"phone" binding:"required"`
	Email         string   `json:"email" binding:"required"`
	CreditBalance *float64 `json:"credit_balance" binding:"required"`
}

// ToModel converts the payload to a customer record
func (r CustomerRequest) ToModel() models.Customer {
	return models.Customer{
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerType:  r.CustomerType,
		Image:         r.Image,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		CreditBalance: *r.CreditBalance,
	}
}

// NewCustomerHandler creates the /customers handler
func NewCustomerHandler(store ResourceStore[models.Customer], logger *zap.Logger) *CRUDHandler[models.Customer, CustomerRequest] {
	return NewCRUDHandler[models.Customer, CustomerRequest](store, ResourceDescriptor[models.Customer]{
		Path:     "/customers",
		Singular: "customer",
		Display:  "Customer",
		SetID:    func(m *models.Customer, id uint) { m.ID = id },
	}, logger)
}

// ProductRequest is the payload for creating or updating a product
type ProductRequest struct {
	ProductName string   `json:"product_name" binding:"required"`
	SKU         string   `json:"sku" binding:"required"`
	UnitPrice   *float64 `json:"unit_price" binding:"required"`
}

// ToModel converts the payload to a product record
func (r ProductRequest) ToModel() models.Product {
	return models.Product{
		ProductName: r.ProductName,
		SKU:         r.SKU,
		UnitPrice:   *r.UnitPrice,
	}
}

// NewProductHandler creates the /products handler
func NewProductHandler(store ResourceStore[models.Product], logger *zap.Logger) *CRUDHandler[models.Product, ProductRequest] {
	return NewCRUDHandler[models.Product, ProductRequest](store, ResourceDescriptor[models.Product]{
		Path:     "/products",
		Singular: "product",
		Display:  "Product",
		SetID:    func(m *models.Product, id uint) { m.ID = id },
	}, logger)
}

// ServiceRequest is the payload for creating or updating a service
type ServiceRequest struct {
	ServiceCode string   `json:"service_code" binding:"required"`
	ServiceName string   `json:"service_name" binding:"required"`
	UnitPrice   *float64 `json:"unit_price" binding:"required"`
}

// ToModel converts the payload to a service record
func (r ServiceRequest) ToModel() models.Service {
	return models.Service{
		ServiceCode: r.ServiceCode,
		ServiceName: r.ServiceName,
		UnitPrice:   *r.UnitPrice,
	}
}

// NewServiceHandler creates the /services handler
func NewServiceHandler(store ResourceStore[models.Service], logger *zap.Logger) *CRUDHandler[models.Service, ServiceRequest] {
	return NewCRUDHandler[models.Service, ServiceRequest](store, ResourceDescriptor[models.Service]{
		Path:     "/services",
		Singular: "service",
		Display:  "Service",
		SetID:    func(m *models.Service, id uint) { m.ID = id },
	}, logger)
}

// ExpenseRequest is the payload for creating or updating an expense
type ExpenseRequest struct {
	ExpenseID   string   `json:"expense_id" binding:"required"`
	ExpenseName string   `json:"expense_name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	ExpenseDate *int64   `json:"expense_date" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	UserID      *uint    `json:"user_id" binding:"required"`
}

// ToModel converts the payload to an expense record
func (r ExpenseRequest) ToModel() models.Expense {
	return models.Expense{
		ExpenseID:   r.ExpenseID,
		ExpenseName: r.ExpenseName,
		Description: r.Description,
		Amount:      *r.Amount,
		ExpenseDate: time.UnixMilli(*r.ExpenseDate).UTC(),
		Category:    r.Category,
		UserID:      *r.UserID,
	}
}

// NewExpenseHandler creates the /expenses handler
func NewExpenseHandler(store ResourceStore[models.Expense], logger *zap.Logger) *CRUDHandler[models.Expense, ExpenseRequest] {
	return NewCRUDHandler[models.Expense, ExpenseRequest](store, ResourceDescriptor[models.Expense]{
		Path:     "/expenses",
		Singular: "expense",
		Display:  "Expense",
		SetID:    func(m *models.Expense, id uint) { m.ID = id },
	}, logger)
}

// VendorRequest is the payload for creating or updating a vendor
type VendorRequest struct {
	VendorID        string `json:"vendor_id" binding:"required"`
	VendorName      string `json:"vendor_name" binding:"required"`
	VendorAddress   string `json:"vendor_address" binding:"required"`
	VendorPhone     string `json:"vendor_phone" binding:"required"`
	VendorTaxNumber string `json:"vendor_tax_number" binding:"required"`
}

// ToModel converts the payload to a vendor record
func (r VendorRequest) ToModel() models.Vendor {
	return models.Vendor{
		VendorID:        r.VendorID,
		VendorName:      r.VendorName,
		VendorAddress:   r.VendorAddress,
		VendorPhone:     r.VendorPhone,
		VendorTaxNumber: r.VendorTaxNumber,
	}
}

// NewVendorHandler creates the /vendors handler
func NewVendorHandler(store ResourceStore[models.Vendor], logger *zap.Logger) *CRUDHandler[models.Vendor, VendorRequest] {
	return NewCRUDHandler[models.Vendor, VendorRequest](store, ResourceDescriptor[models.Vendor]{
		Path:     "/vendors",
		Singular: "vendor",
		Display:  "Vendor",
		SetID:    func(m *models.Vendor, id uint) { m.ID = id },
	}, logger)
}

// WarehouseRequest is the payload for creating or updating a warehouse
type WarehouseRequest struct {
	WarehouseID   string `json:"warehouse_id" binding:"required"`
	WarehouseName string `json:"warehouse_name" binding:"required"`
	Location      string `json:"location" binding:"required"`
}

// ToModel converts the payload to a warehouse record
func (r WarehouseRequest) ToModel() models.Warehouse {
	return models.Warehouse{
		WarehouseID:   r.WarehouseID,
		WarehouseName: r.WarehouseName,
		Location:      r.Location,
	}
}

// NewWarehouseHandler creates the /warehouses handler
func NewWarehouseHandler(store ResourceStore[models.Warehouse], logger *zap.Logger) *CRUDHandler[models.Warehouse, WarehouseRequest] {
	return NewCRUDHandler[models.Warehouse, WarehouseRequest](store, ResourceDescriptor[models.Warehouse]{
		Path:     "/warehouses",
		Singular: "warehouse",
		Display:  "Warehouse",
		SetID:    func(m *models.Warehouse, id uint) { m.ID = id },
	}, logger)
}

// TransactionRequest is the payload for creating or updating a transaction
type TransactionRequest struct {
	TransactionID   string   `json:"transaction_id" binding:"required"`
	TransactionDate *int64   `json:"transaction_date" binding:"required"`
	OrderID         *uint    `json:"order_id" binding:"required"`
	UserID          *uint    `json:"user_id" binding:"required"`
	Amount          *float64 `json:"amount" binding:"required"`
	TransactionType string   `json:"transaction_type" binding:"required"`
}

// ToModel converts the payload to a transaction record
func (r TransactionRequest) ToModel() models.Transaction {
	return models.Transaction{
		TransactionID:   r.TransactionID,
		TransactionDate: time.UnixMilli(*r.TransactionDate).UTC(),
		OrderID:         *r.OrderID,
		UserID:          *r.UserID,
		Amount:          *r.Amount,
		TransactionType: r.TransactionType,
	}
}

// NewTransactionHandler creates the /transactions handler
func NewTransactionHandler(store ResourceStore[models.Transaction], logger *zap.Logger) *CRUDHandler[models.Transaction, TransactionRequest] {
	return NewCRUDHandler[models.Transaction, TransactionRequest](store, ResourceDescriptor[models.Transaction]{
		Path:     "/transactions",
		Singular: "transaction",
		Display:  "Transaction",
		SetID:    func(m *models.Transaction, id uint) { m.ID = id },
	}, logger)
}

// PICRequest is the payload for creating or updating a person in charge
type PICRequest struct {
	PicID       string `json:"pic_id" binding:"required"`
	UserID      *uint  `json:"user_id" binding:"required"`
	WarehouseID *uint  `json:"warehouse_id" binding:"required"`
}

// ToModel converts the payload to a PIC record
func (r PICRequest) ToModel() models.PIC {
	return models.PIC{
		PicID:       r.PicID,
		UserID:      *r.UserID,
		WarehouseID: *r.WarehouseID,
	}
}

// NewPICHandler creates the /pics handler
func NewPICHandler(store ResourceStore[models.PIC], logger *zap.Logger) *CRUDHandler[models.PIC, PICRequest] {
	return NewCRUDHandler[models.PIC, PICRequest](store, ResourceDescriptor[models.PIC]{
		Path:     "/pics",
		Singular: "pic",
		Display:  "PIC",
		SetID:    func(m *models.PIC, id uint) { m.ID = id },
	}, logger)
}
