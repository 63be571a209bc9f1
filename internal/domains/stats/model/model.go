package model

// TopLimit is the number of excursions listed in the ranking.
const TopLimit = 5

type Stats struct {
	Clientes       ClientStats      `json:"clientes"`
	Excursiones    ExcursionStats   `json:"excursiones"`
	Reservas       ReservationStats `json:"reservas"`
	Ingresos       float64          `json:"ingresos"`
	TopExcursiones []TopExcursion   `json:"topExcursiones"`
}

type ClientStats struct {
	Total     int            `json:"total"`
	PorEstado map[string]int `json:"porEstado"`
	VIP       int            `json:"vip"`
	Recientes int            `json:"recientes"`
}

type ExcursionStats struct {
	Total      int `json:"total"`
	Activas    int `json:"activas"`
	Destacadas int `json:"destacadas"`
}

type ReservationStats struct {
	Total     int            `json:"total"`
	PorEstado map[string]int `json:"porEstado"`
	Personas  int            `json:"personas"`
}

// TopExcursion ranks an excursion by its non-cancelled reservations.
type TopExcursion struct {
	ExcursionID string  `json:"excursionId"`
	Nombre      string  `json:"nombre"`
	Reservas    int     `json:"reservas"`
	Ingresos    float64 `json:"ingresos"`
}
