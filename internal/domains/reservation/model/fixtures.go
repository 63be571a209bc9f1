package model

// Fixtures is the default reservation set. References point at the client
// and excursion fixtures.
func Fixtures() []Reservation {
	return []Reservation{
		{
			ID: "RES-001", ClienteID: "CLI-001", ClienteNombre: "María García",
			ExcursionID: "tour-chichen-itza-1700000000000", ExcursionNombre: "Tour Chichén Itzá",
			Fecha: "2024-06-15", Personas: 2, Estado: StatusConfirmed, Total: 2900,
		},
		{
			ID: "RES-002", ClienteID: "CLI-002", ClienteNombre: "Carlos Rodríguez",
			ExcursionID: "nado-con-tiburon-ballena-1700000100000", ExcursionNombre: "Nado con Tiburón Ballena",
			Fecha: "2024-07-02", Personas: 1, Estado: StatusPending, Total: 2800,
		},
		{
			ID: "RES-003", ClienteID: "CLI-001", ClienteNombre: "María García",
			ExcursionID: "cenotes-de-tulum-1700000200000", ExcursionNombre: "Cenotes de Tulum",
			Fecha: "2024-07-20", Personas: 4, Estado: StatusConfirmed, Total: 4800,
		},
		{
			ID: "RES-004", ClienteID: "CLI-005", ClienteNombre: "Sofía López",
			ExcursionID: "tour-chichen-itza-1700000000000", ExcursionNombre: "Tour Chichén Itzá",
			Fecha: "2024-05-10", Personas: 3, Estado: StatusCancelled, Total: 4350,
		},
	}
}
