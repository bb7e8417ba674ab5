package response

// CartItem is a unique product in the cart annotated with how many units of
// it the cart holds.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart lists the aggregated cart. ProductsLength counts units, not unique
// products, so it can exceed len(Products).
type Cart struct {
	Msg            string     `json:"msg"`
	Products       []CartItem `json:"products"`
	ProductsLength int        `json:"productsLength"`
}
