package catalog

type CreateHotelRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	Stars       int    `json:"stars" binding:"gte=0,lte=5"`
}

type UpdateHotelRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Stars       *int    `json:"stars"`
}

type CreateRoomRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
}

type UpdateRoomRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Capacity    *int     `json:"capacity"`
}
