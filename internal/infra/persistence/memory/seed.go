package memory

import (
	"encoding/json"
	"fmt"
	"os"

	domdish "example.com/grubhouse/internal/domain/dish"
	domorder "example.com/grubhouse/internal/domain/order"
)

type seedDish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       int64  `json:"price"`
}

type seedLineItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
}

type seedOrder struct {
	ID           string         `json:"id"`
	DeliverTo    string         `json:"deliverTo"`
	MobileNumber string         `json:"mobileNumber"`
	Status       string         `json:"status"`
	Dishes       []seedLineItem `json:"dishes"`
}

type seedFile struct {
	Dishes []seedDish  `json:"dishes"`
	Orders []seedOrder `json:"orders"`
}

// LoadSeed reads initial dish and order data from a JSON file.
func LoadSeed(path string) ([]*domdish.Dish, []*domorder.Order, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read seed file: %w", err)
	}

	var sf seedFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		return nil, nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	dishes := make([]*domdish.Dish, 0, len(sf.Dishes))
	for _, d := range sf.Dishes {
		dishes = append(dishes, &domdish.Dish{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Price:       d.Price,
		})
	}

	orders := make([]*domorder.Order, 0, len(sf.Orders))
	for _, o := range sf.Orders {
		items := make([]domorder.LineItem, 0, len(o.Dishes))
		for _, it := range o.Dishes {
			items = append(items, domorder.LineItem{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				ImageURL:    it.ImageURL,
				Price:       it.Price,
				Quantity:    it.Quantity,
			})
		}
		orders = append(orders, &domorder.Order{
			ID:           o.ID,
			DeliverTo:    o.DeliverTo,
			MobileNumber: o.MobileNumber,
			Status:       domorder.Status(o.Status),
			Dishes:       items,
		})
	}

	return dishes, orders, nil
}
