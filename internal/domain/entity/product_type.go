package entity

// ProductType representa una categoría de electrodoméstico (nevera, lavadora, etc.).
type ProductType struct {
	ID       string
	TypeName string
}
