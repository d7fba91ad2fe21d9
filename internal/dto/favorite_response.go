package dto

type FavoriteResponse struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	ProductID int64            `json:"product_id"`
	Product   *ProductResponse `json:"product"`
}

type AddedFavoriteResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
}

type AddFavoriteRequest struct {
	ProductID int64 `json:"product_id"`
}

type AddedFavoriteEnvelope struct {
	Favorite AddedFavoriteResponse `json:"favorite"`
}
