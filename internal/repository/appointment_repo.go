package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	ServiceCenter  string    `gorm:"column:sc_id"`
	Date           time.Time `gorm:"column:date"`
	AvailableSlots int       `gorm:"column:available_slots"`
}

func (appointmentModel) TableName() string { return "appointments" }

// OpenSlot is one service center with free capacity on a given day.
type OpenSlot struct {
	Date              time.Time `gorm:"column:date"`
	ServiceCenterID   string    `gorm:"column:sc_id"`
	ServiceCenterName string    `gorm:"column:service_center_name"`
}

func (r *AppointmentRepository) AvailableOn(ctx context.Context, day time.Time) ([]OpenSlot, error) {
	var rows []OpenSlot
	q := `
SELECT a.date, a.sc_id, sc.name AS service_center_name
FROM appointments a
JOIN service_centers sc ON a.sc_id = sc.sc_id
WHERE a.date >= ? AND a.date < ? AND a.available_slots > 0
ORDER BY a.date, sc.name
`
	tx := r.db.WithContext(ctx).Raw(q, day, day.AddDate(0, 0, 1)).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// ReserveSlot decrements free capacity for the center/day and reports whether
// a slot was actually taken. Guarded by available_slots > 0 so two racing
// bookings cannot both win the last slot.
func (r *AppointmentRepository) ReserveSlot(ctx context.Context, scID string, day time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("sc_id = ? AND date >= ? AND date < ? AND available_slots > 0", scID, day, day.AddDate(0, 0, 1)).
		UpdateColumn("available_slots", gorm.Expr("available_slots - 1"))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// ReleaseSlot gives back capacity after a cancellation.
func (r *AppointmentRepository) ReleaseSlot(ctx context.Context, scID string, day time.Time) error {
	return r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("sc_id = ? AND date >= ? AND date < ?", scID, day, day.AddDate(0, 0, 1)).
		UpdateColumn("available_slots", gorm.Expr("available_slots + 1")).
		Error
}
