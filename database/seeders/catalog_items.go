package seeders

import "tms-lite/models/catalog"

// DesignerItems returns the fixed catalog seed, in display order. Popularity
// and LastUpdated are assigned on every refresh.
func DesignerItems() []catalog.Item {
	return []catalog.Item{
		{Brand: "Gucci", Name: "GG Marmont Bag", Category: "Bags", Price: 1980, ImageURL: "https://picsum.photos/200/200?text=Gucci+Bag"},
		{Brand: "Gucci", Name: "Ace Sneakers", Category: "Shoes", Price: 720, ImageURL: "https://picsum.photos/200/200?text=Gucci+Ace"},
		{Brand: "Gucci", Name: "Horsebit Loafers", Category: "Shoes", Price: 890, ImageURL: "https://picsum.photos/200/200?text=Gucci+Loafers"},
		{Brand: "Prada", Name: "Re-Edition 2000", Category: "Bags", Price: 1250, ImageURL: "https://picsum.photos/200/200?text=Prada+Bag"},
		{Brand: "Prada", Name: "Monolith Boots", Category: "Shoes", Price: 1550, ImageURL: "https://picsum.photos/200/200?text=Prada+Boots"},
		{Brand: "Balenciaga", Name: "Triple S Sneakers", Category: "Shoes", Price: 1090, ImageURL: "https://picsum.photos/200/200?text=Balenciaga"},
		{Brand: "Louis Vuitton", Name: "Neverfull MM", Category: "Bags", Price: 2030, ImageURL: "https://picsum.photos/200/200?text=LV+Bag"},
		{Brand: "Dior", Name: "Saddle Bag", Category: "Bags", Price: 3800, ImageURL: "https://picsum.photos/200/200?text=Dior+Bag"},
		{Brand: "Off-White", Name: "Industrial Belt", Category: "Accessories", Price: 320, ImageURL: "https://picsum.photos/200/200?text=Off-White+Belt"},
	}
}
