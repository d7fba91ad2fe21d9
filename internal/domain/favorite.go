package domain

type Favorite struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"userId"`
	ProductID int64    `json:"productId"`
	Product   *Product `json:"product,omitempty"`
}

// AddedFavorite carries the server-assigned id needed to remove the
// favorite later.
type AddedFavorite struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"productId"`
}

type FavoritePage struct {
	Favorites  []Favorite `json:"favorites"`
	Pagination Pagination `json:"pagination"`
}
