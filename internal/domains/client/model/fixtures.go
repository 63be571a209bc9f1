package model

func ptr(s string) *string {
	return &s
}

// Fixtures is the default client seed.
func Fixtures() []Client {
	return []Client{
		{
			ID:                   "CLI-001",
			Nombre:               "María García",
			Email:                "maria.garcia@example.com",
			Telefono:             "+52 998 123 4567",
			FechaRegistro:        "2023-11-02",
			Reservas:             4,
			UltimaReserva:        ptr("2024-03-18"),
			Estado:               StatusActive,
			VIP:                  true,
			Direccion:            "Av. Tulum 120, Cancún",
			Preferencias:         "Grupos pequeños",
			CategoriasPreferidas: []string{"Cultural", "Naturaleza"},
		},
		{
			ID:                   "CLI-002",
			Nombre:               "Carlos Rodríguez",
			Email:                "carlos.rodriguez@example.com",
			Telefono:             "+52 984 222 3344",
			FechaRegistro:        "2024-01-15",
			Reservas:             2,
			UltimaReserva:        ptr("2024-02-27"),
			Estado:               StatusActive,
			CategoriasPreferidas: []string{"Aventura"},
		},
		{
			ID:            "CLI-003",
			Nombre:        "Laura Martínez",
			Email:         "laura.martinez@example.com",
			Telefono:      "+52 55 8765 4321",
			FechaRegistro: "2023-06-20",
			Reservas:      1,
			UltimaReserva: ptr("2023-07-04"),
			Estado:        StatusInactive,
			Notas:         "Prefiere contacto por correo",
		},
		{
			ID:            "CLI-004",
			Nombre:        "Jorge Hernández",
			Email:         "jorge.hernandez@example.com",
			Telefono:      "+52 999 555 0101",
			FechaRegistro: "2024-03-01",
			Estado:        StatusNew,
		},
		{
			ID:            "CLI-005",
			Nombre:        "Sofía López",
			Email:         "sofia.lopez@example.com",
			Telefono:      "+52 998 777 8899",
			FechaRegistro: "2022-09-10",
			Reservas:      6,
			UltimaReserva: ptr("2023-12-22"),
			Estado:        StatusBlocked,
			Notas:         "Cargo rechazado en dos ocasiones",
		},
	}
}
