package dish

type Dish struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Price       int64
}
