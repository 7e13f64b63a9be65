package model

// House is a rental property as the backend returns it.
type House struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	Size        float64 `json:"size"`
	Furnished   bool    `json:"furnished"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"image_url"`
	OwnerID     int     `json:"owner_id"`
}

// HouseForm is the payload for creating or updating a house. It is also
// what the New House WebApp sends back through Telegram.
type HouseForm struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	Size        float64 `json:"size"`
	Furnished   bool    `json:"furnished"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"image_url"`
}

func (f HouseForm) IsValid() bool {
	return f.Title != "" && f.Address != "" && f.Location != "" && f.Price > 0
}

// Form returns the editable part of a house, used to prefill the edit form.
func (h House) Form() HouseForm {
	return HouseForm{
		Title:       h.Title,
		Description: h.Description,
		Address:     h.Address,
		Location:    h.Location,
		Price:       h.Price,
		Bedrooms:    h.Bedrooms,
		Bathrooms:   h.Bathrooms,
		Size:        h.Size,
		Furnished:   h.Furnished,
		Available:   h.Available,
		ImageURL:    h.ImageURL,
	}
}
