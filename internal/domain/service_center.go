package domain

import "time"

type ServiceCenter struct {
	ID   string `json:"sc_id" gorm:"column:sc_id;primaryKey"`
	Name string `json:"name"`
}

// Appointment tracks remaining capacity per service center per day.
type Appointment struct {
	ID             int64     `json:"id" gorm:"column:id;primaryKey"`
	ServiceCenter  string    `json:"sc_id" gorm:"column:sc_id"`
	Date           time.Time `json:"date" gorm:"column:date"`
	AvailableSlots int       `json:"available_slots" gorm:"column:available_slots"`
}
