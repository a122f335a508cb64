package models

import "time"

// Team - команда лиги. Для таблиц важны только идентичность и отображаемое имя.
type Team struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
