package fixtures

import (
	"time"

	"github.com/stafftide/intranet-backend-go/internal/domain/payroll"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DefaultHolidays returns the statutory holiday table shipped with the
// application, keyed by country and year. Colombia is the only country with a
// maintained rule set; movable feasts are pinned per year because Colombia
// shifts most of them to the following Monday (Ley Emiliani).
//
// The table is plain data so deployments can extend it per (country, year)
// without touching the engine.
func DefaultHolidays() map[payroll.CountryCode]map[int][]time.Time {
	return map[payroll.CountryCode]map[int][]time.Time{
		payroll.CountryColombia: {
			2025: {
				date(2025, time.January, 1),    // Año Nuevo
				date(2025, time.January, 6),    // Reyes Magos
				date(2025, time.March, 24),     // San José (moved)
				date(2025, time.April, 17),     // Jueves Santo
				date(2025, time.April, 18),     // Viernes Santo
				date(2025, time.May, 1),        // Día del Trabajo
				date(2025, time.June, 2),       // Ascensión (moved)
				date(2025, time.June, 23),      // Corpus Christi (moved)
				date(2025, time.June, 30),      // San Pedro y San Pablo (moved)
				date(2025, time.July, 20),      // Independencia
				date(2025, time.August, 7),     // Batalla de Boyacá
				date(2025, time.August, 18),    // Asunción (moved)
				date(2025, time.October, 13),   // Día de la Raza (moved)
				date(2025, time.November, 3),   // Todos los Santos (moved)
				date(2025, time.November, 17),  // Independencia de Cartagena (moved)
				date(2025, time.December, 8),   // Inmaculada Concepción
				date(2025, time.December, 25),  // Navidad
			},
		},
	}
}
