package repository

import (
	"context"
	"time"

	"carservice/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID          string    `gorm:"column:customer_id;primaryKey"`
	FullName    string    `gorm:"column:full_name"`
	PhoneNumber string    `gorm:"column:phone_number"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (customerModel) TableName() string { return "customers" }

type vehicleModel struct {
	RegistrationNo string `gorm:"column:registration_no;primaryKey"`
	CustomerID     string `gorm:"column:customer_id"`
	Make           string `gorm:"column:make"`
	Model          string `gorm:"column:model"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainCustomer(m customerModel) *domain.Customer {
	return &domain.Customer{
		ID:          m.ID,
		FullName:    m.FullName,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) GetVehicles(ctx context.Context, customerID string) ([]domain.Vehicle, error) {
	var rows []vehicleModel
	tx := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("registration_no").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Vehicle, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Vehicle{
			RegistrationNo: m.RegistrationNo,
			CustomerID:     m.CustomerID,
			Make:           m.Make,
			Model:          m.Model,
		})
	}
	return out, nil
}

// LastCustomerID returns the highest customer id, or "" when the table is
// empty. IDs are C%03d so lexicographic order matches numeric order.
func (r *CustomerRepository) LastCustomerID(ctx context.Context) (string, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).Order("customer_id DESC").First(&m)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", tx.Error
	}
	return m.ID, nil
}

// CreateWithVehicle inserts the customer and their first vehicle in one
// transaction.
func (r *CustomerRepository) CreateWithVehicle(ctx context.Context, c *domain.Customer, registrationNo string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cm := customerModel{
			ID:          c.ID,
			FullName:    c.FullName,
			PhoneNumber: c.PhoneNumber,
		}
		if err := tx.Create(&cm).Error; err != nil {
			return err
		}
		vm := vehicleModel{
			RegistrationNo: registrationNo,
			CustomerID:     c.ID,
		}
		if err := tx.Create(&vm).Error; err != nil {
			return err
		}
		c.CreatedAt = cm.CreatedAt
		return nil
	})
}
