package model

func price(v float64) *float64 {
	return &v
}

// Fixtures is the default excursion catalog.
func Fixtures() []Excursion {
	return []Excursion{
		{
			ID:               "tour-chichen-itza-1700000000000",
			Nombre:           "Tour Chichén Itzá",
			DescripcionCorta: "Visita guiada a la maravilla del mundo maya",
			Descripcion:      "Recorrido de día completo por la zona arqueológica con guía certificado, comida buffet y parada en el cenote Ik Kil.",
			Precio:           1450,
			PrecioAnterior:   price(1650),
			Ubicacion:        "Yucatán",
			Duracion:         "12 horas",
			MaxPersonas:      20,
			Destacada:        true,
			Categoria:        "Cultural",
			Estado:           StatusActive,
			Imagen:           "https://images.example.com/chichen-itza.jpg",
			Imagenes:         []string{"https://images.example.com/chichen-itza-2.jpg"},
			Incluye:          []string{"Transporte", "Guía certificado", "Comida buffet"},
			NoIncluye:        []string{"Propinas"},
			Horarios:         []string{"07:00"},
			PuntoEncuentro:   "Lobby del hotel",
		},
		{
			ID:               "nado-con-tiburon-ballena-1700000100000",
			Nombre:           "Nado con Tiburón Ballena",
			DescripcionCorta: "Nada junto al pez más grande del mundo",
			Descripcion:      "Salida en lancha desde Isla Mujeres con equipo de snorkel y guía bilingüe.",
			Precio:           2800,
			Ubicacion:        "Quintana Roo",
			Duracion:         "8 horas",
			MaxPersonas:      10,
			Destacada:        true,
			Categoria:        "Aventura",
			Estado:           StatusActive,
			Imagen:           "https://images.example.com/tiburon-ballena.jpg",
			Imagenes:         []string{},
			Incluye:          []string{"Equipo de snorkel", "Chaleco salvavidas", "Ceviche"},
			NoIncluye:        []string{"Fotografías"},
			Horarios:         []string{"06:30"},
			PuntoEncuentro:   "Muelle de Puerto Juárez",
		},
		{
			ID:               "cenotes-de-tulum-1700000200000",
			Nombre:           "Cenotes de Tulum",
			DescripcionCorta: "Ruta por tres cenotes y las ruinas de Tulum",
			Descripcion:      "Nado en cenotes abiertos y cavernas con visita a la zona arqueológica frente al mar.",
			Precio:           1200,
			Ubicacion:        "Quintana Roo",
			Duracion:         "6 horas",
			MaxPersonas:      12,
			Categoria:        "Naturaleza",
			Estado:           StatusActive,
			Imagenes:         []string{},
			Incluye:          []string{"Transporte", "Entradas"},
			NoIncluye:        []string{},
			Horarios:         []string{"08:00", "13:00"},
			PuntoEncuentro:   "Parque central de Tulum",
		},
		{
			ID:               "paseo-en-catamaran-1700000300000",
			Nombre:           "Paseo en Catamarán",
			DescripcionCorta: "Navegación a Isla Mujeres con barra libre",
			Descripcion:      "Catamarán con snorkel en arrecife, comida y tiempo libre en Playa Norte.",
			Precio:           1600,
			PrecioAnterior:   price(1800),
			Ubicacion:        "Quintana Roo",
			Duracion:         "7 horas",
			MaxPersonas:      40,
			Categoria:        "Playa",
			Estado:           StatusInactive,
			Imagenes:         []string{},
			Incluye:          []string{"Barra libre", "Snorkel"},
			NoIncluye:        []string{"Impuesto de muelle"},
			Horarios:         []string{"09:30"},
			PuntoEncuentro:   "Marina Aquatours",
		},
	}
}
