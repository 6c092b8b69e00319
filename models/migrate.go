package models

// All lists every model the server migrates at startup. Tests migrate the
// same set so schema drift shows up immediately.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Address{},
		&Product{},
		&Stock{},
		&CartItem{},
		&Order{},
		&OrderItem{},
	}
}
