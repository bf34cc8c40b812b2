package entity

// Niveles de alerta de stock. Una advertencia es un valor calculado al vuelo
// sobre el catálogo, nunca se persiste.
const (
	WarningLevelLow   = 1 // stock bajo (0 < stock <= umbral)
	WarningLevelEmpty = 2 // sin existencias (stock = 0)
)
